package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"golang.org/x/text/language"

	"github.com/pixil98/gonorth-export/internal/templates"
)

const defaultSubject = "gonorth.export.render"

type ExportConfig struct {
	// Subject is the NATS subject render requests arrive on.
	Subject string `json:"subject"`
	// EventsSubject receives a rendered event per request when set.
	EventsSubject string `json:"events_subject"`
	// Language of preview texts when a request names none.
	Language string `json:"language"`
	// Engines limits the renderer families that are built.
	Engines []templates.RenderingEngine `json:"engines"`
}

func (c *ExportConfig) validate() error {
	el := errors.NewErrorList()

	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			el.Add(fmt.Errorf("parsing export language: %w", err))
		}
	}
	if c.EventsSubject != "" && c.EventsSubject == c.subject() {
		el.Add(fmt.Errorf("events_subject must differ from subject"))
	}

	return el.Err()
}

func (c *ExportConfig) subject() string {
	if c.Subject == "" {
		return defaultSubject
	}
	return c.Subject
}
