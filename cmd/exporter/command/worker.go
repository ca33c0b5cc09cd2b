package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-service"

	"github.com/pixil98/gonorth-export/internal/actions"
	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exportsvc"
	"github.com/pixil98/gonorth-export/internal/messaging"
)

// BuildService wires content, templates and renderers into an export service.
func BuildService(ctx context.Context, cfg *Config) (*exportsvc.Service, *content.Dictionary, error) {
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, nil, err
	}

	files, err := cfg.Storage.BuildTemplateProvider()
	if err != nil {
		return nil, nil, err
	}
	provider, err := cfg.Cache.wrap(ctx, files)
	if err != nil {
		return nil, nil, fmt.Errorf("creating template cache: %w", err)
	}

	dispatcher, err := actions.NewDispatcher(dict, provider, cfg.Export.Engines...)
	if err != nil {
		return nil, nil, fmt.Errorf("creating action dispatcher: %w", err)
	}

	return exportsvc.NewService(dict, dispatcher, cfg.Export.Language), dict, nil
}

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	svc, _, err := BuildService(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	server, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	var opts []exportsvc.WorkerOpt
	if cfg.Export.EventsSubject != "" {
		opts = append(opts, exportsvc.WithEvents(messaging.NewNatsPublisher(server), cfg.Export.EventsSubject))
	}

	return service.WorkerList{
		"nats":   server,
		"export": exportsvc.NewWorker(server, svc, cfg.Export.subject(), opts...),
	}, nil
}
