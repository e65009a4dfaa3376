package models

import "time"

// AddressRecord is the persisted state of one contact info widget instance.
// Lat and Lon are both zero when the address has not been geocoded or could not be plotted.
type AddressRecord struct {
	InstanceID string    `json:"instance_id"`
	Title      string    `json:"title"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Hours      string    `json:"hours"`
	ShowMap    bool      `json:"showmap"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ContactInfoForm is what the widget settings form submits.
// A nil ShowMap means the checkbox was not part of the submission.
type ContactInfoForm struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	ShowMap *bool  `json:"showmap"`
}

// WidgetWrapper carries the markup the host page wraps around every widget.
type WidgetWrapper struct {
	BeforeWidget string `json:"before_widget"`
	AfterWidget  string `json:"after_widget"`
	BeforeTitle  string `json:"before_title"`
	AfterTitle   string `json:"after_title"`
	Mobile       bool   `json:"mobile"`
}

// RenderedWidget is the widget markup plus the assets the host has to load for it.
type RenderedWidget struct {
	HTML    string   `json:"html"`
	Scripts []string `json:"scripts"`
	Styles  []string `json:"styles"`
}
