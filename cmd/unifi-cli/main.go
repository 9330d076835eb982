// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command unifi-cli is the scripted, one-shot entrypoint: it connects a
// controller facade, dispatches a single subcommand, prints the result,
// and disconnects. One subcommand group per original crate file (acl,
// admin, alarms, config, countries, dns, dpi, events, firewall, networks,
// radius, sites, stats, system, traffic_lists, vpn, wans, wifi); argument
// parsing itself stays minimal since exhaustive per-field flags are out
// of scope, each group is a thin call into controller.Execute or a read
// off the entity store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ksc98/unifly-sub001/internal/cliconfig"
	"github.com/ksc98/unifly-sub001/internal/command"
	"github.com/ksc98/unifly-sub001/internal/controller"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	group := os.Args[1]

	fs := flag.NewFlagSet("unifi-cli", flag.ExitOnError)
	flags := cliconfig.Register(fs)
	fs.Parse(os.Args[2:])
	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "unifi-cli: missing action for group", group)
		os.Exit(2)
	}
	action, actionArgs := rest[0], rest[1:]

	cfg, err := flags.Build()
	if err != nil {
		fail(err)
	}

	log, err := newLoggerForCLI(*flags.LogLevel)
	if err != nil {
		fail(err)
	}
	defer log.Sync()

	run, ok := groups[group]
	if !ok {
		fmt.Fprintln(os.Stderr, "unifi-cli: unknown group", group)
		usage()
		os.Exit(2)
	}

	err = controller.Oneshot(context.Background(), cfg, log, func(ctrl *controller.Controller) error {
		return run(ctrl, action, actionArgs)
	})
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "unifi-cli:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: unifi-cli <group> [flags] <action> [args]")
	fmt.Fprintln(os.Stderr, "groups: acl, admin, alarms, config, countries, dns, dpi, events,")
	fmt.Fprintln(os.Stderr, "        firewall, networks, radius, sites, stats, system,")
	fmt.Fprintln(os.Stderr, "        traffic_lists, vpn, wans, wifi")
}

type groupFunc func(ctrl *controller.Controller, action string, args []string) error

var groups = map[string]groupFunc{
	"acl":           runAcl,
	"admin":         runAdmin,
	"alarms":        runAlarms,
	"config":        runConfig,
	"countries":     runCountries,
	"dns":           runDns,
	"dpi":           runDpi,
	"events":        runEvents,
	"firewall":      runFirewall,
	"networks":      runNetworks,
	"radius":        runRadius,
	"sites":         runSites,
	"stats":         runStats,
	"system":        runSystem,
	"traffic_lists": runTrafficLists,
	"vpn":           runVpn,
	"wans":          runWans,
	"wifi":          runWifi,
}

func execute(ctrl *controller.Controller, cmd command.Command) error {
	result, err := ctrl.Execute(context.Background(), cmd)
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", result)
	return nil
}

func actionFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}
