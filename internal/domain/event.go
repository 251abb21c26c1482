package domain

import "time"

// EventType separates page views from interaction events.
type EventType string

const (
	EventPageView EventType = "page_view"
	EventAction   EventType = "event"
)

// Event names emitted by dashboard interactions.
const (
	EventFilterChange     = "filter_change"
	EventFilterChipRemove = "filter_chip_remove"
	EventSearch           = "search"
	EventSearchClear      = "search_clear"
	EventFiltersReset     = "filters_reset"
	EventSortChange       = "sort_change"
	EventOutboundClick    = "outbound_click"
)

// Event is one telemetry record as posted to /collect.
type Event struct {
	ID          string         `json:"id,omitempty"`
	Type        EventType      `json:"type" validate:"required,oneof=page_view event"`
	Name        string         `json:"name,omitempty" validate:"required_if=Type event,max=64"`
	Path        string         `json:"path,omitempty" validate:"max=512"`
	Title       string         `json:"title,omitempty" validate:"max=256"`
	Referrer    string         `json:"referrer,omitempty" validate:"max=1024"`
	SessionID   string         `json:"session_id" validate:"required,max=128"`
	UTMSource   string         `json:"utm_source,omitempty" validate:"max=128"`
	UTMMedium   string         `json:"utm_medium,omitempty" validate:"max=128"`
	UTMCampaign string         `json:"utm_campaign,omitempty" validate:"max=128"`
	UTMTerm     string         `json:"utm_term,omitempty" validate:"max=128"`
	UTMContent  string         `json:"utm_content,omitempty" validate:"max=128"`
	Props       map[string]any `json:"props,omitempty"`
	ReceivedAt  time.Time      `json:"received_at,omitempty"`
}
