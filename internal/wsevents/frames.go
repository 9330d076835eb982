// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package wsevents

import (
	"encoding/json"
	"time"

	"github.com/ksc98/unifly-sub001/internal/domain"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/store"
)

// wsEnvelope is the shape every message on the legacy WebSocket arrives
// in: {"meta": {"rc": "ok", "message": "events"}, "data": [...]}.
type wsEnvelope struct {
	Meta wsMeta            `json:"meta"`
	Data []json.RawMessage `json:"data"`
}

type wsMeta struct {
	Rc      string `json:"rc"`
	Message string `json:"message"`
}

// rawEvent is the typed shape of one "events" data entry. Only "events"
// messages are decoded into it; an entry that fails to decode or has no
// key falls back to eventFromRaw, and other message types (device:sync,
// sta:sync, ...) always go through eventFromRaw.
type rawEvent struct {
	Key       string `json:"key"`
	Subsystem string `json:"subsystem"`
	SiteID    string `json:"site_id"`
	Message   string `json:"msg"`
	Datetime  string `json:"datetime"`
	Mac       string `json:"mac"`
	User      string `json:"user"`
}

// parseAndPublish decodes one WebSocket text frame and publishes every
// event it carries to ds. Malformed frames are logged and dropped rather
// than propagated, matching the tolerant legacy feed this stream is.
func parseAndPublish(data []byte, ds *store.DataStore, log *logging.Logger) {
	var env wsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Debugw("failed to parse websocket envelope", "error", err)
		return
	}

	for _, raw := range env.Data {
		ev := eventFromFrame(env.Meta.Message, raw, log)
		ds.PublishEvent(ev)
	}
}

// eventFromFrame decodes one data entry into a domain.Event. "events"
// messages attempt a typed decode first; sync messages and anything that
// fails typed decoding fall back to pulling individual fields out of the
// raw JSON object, using msgType as the key when the payload has none.
func eventFromFrame(msgType string, raw json.RawMessage, log *logging.Logger) domain.Event {
	if msgType == "events" {
		var re rawEvent
		if err := json.Unmarshal(raw, &re); err == nil && re.Key != "" {
			return eventFromTyped(re)
		}
		log.Debugw("could not deserialize event, constructing from raw data", "msg_type", msgType)
	}
	return eventFromRaw(msgType, raw)
}

func eventFromTyped(re rawEvent) domain.Event {
	ev := domain.Event{
		EventType: re.Key,
		Category:  categoryFromSubsystem(re.Subsystem),
		Severity:  domain.EventSeverityInfo,
		Message:   re.Message,
		Timestamp: parseTimestamp(re.Datetime),
		Source:    domain.DataSourceWebSocket,
	}
	if re.SiteID != "" {
		id := domain.NewEntityId(re.SiteID)
		ev.SiteID = &id
	}
	if re.Mac != "" {
		m := domain.NewMacAddress(re.Mac)
		ev.DeviceMac = &m
	}
	if re.User != "" {
		m := domain.NewMacAddress(re.User)
		ev.ClientMac = &m
	}
	key := re.Key
	ev.RawKey = &key
	return ev
}

// eventFromRaw builds a domain.Event by pulling known field names out of
// an arbitrary JSON object, for sync dumps and anything a typed decode
// rejected. msgType stands in for the event key when the payload has none
// of its own, e.g. "device:sync".
func eventFromRaw(msgType string, raw json.RawMessage) domain.Event {
	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)

	key := stringField(obj, "key", msgType)
	siteID := stringField(obj, "site_id", "")
	message := stringField(obj, "msg", stringField(obj, "message", ""))
	datetime := stringField(obj, "datetime", "")
	subsystem := stringField(obj, "subsystem", "unknown")

	ev := domain.Event{
		EventType: key,
		Category:  categoryFromSubsystem(subsystem),
		Severity:  domain.EventSeverityInfo,
		Message:   message,
		Timestamp: parseTimestamp(datetime),
		Source:    domain.DataSourceWebSocket,
		RawKey:    &key,
	}
	if siteID != "" {
		id := domain.NewEntityId(siteID)
		ev.SiteID = &id
	}
	if mac := stringField(obj, "mac", ""); mac != "" {
		m := domain.NewMacAddress(mac)
		ev.DeviceMac = &m
	}
	if user := stringField(obj, "user", ""); user != "" {
		m := domain.NewMacAddress(user)
		ev.ClientMac = &m
	}
	return ev
}

func stringField(obj map[string]any, key, fallback string) string {
	if obj == nil {
		return fallback
	}
	if v, ok := obj[key].(string); ok {
		return v
	}
	return fallback
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Now().UTC()
}

func categoryFromSubsystem(subsystem string) domain.EventCategory {
	switch subsystem {
	case "wlan", "lan":
		return domain.EventCategoryNetwork
	case "sta":
		return domain.EventCategoryClient
	case "gw":
		return domain.EventCategoryDevice
	case "vpn":
		return domain.EventCategoryVpn
	default:
		return domain.EventCategoryUnknown
	}
}
