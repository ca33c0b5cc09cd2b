// Command renderaction renders a single action node or export snippet and
// prints the generated code, or its preview text, followed by a report of
// the problems found in the content.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pixil98/gonorth-export/cmd/exporter/command"
	"github.com/pixil98/gonorth-export/internal/actions"
	"github.com/pixil98/gonorth-export/internal/display"
	"github.com/pixil98/gonorth-export/internal/exportsvc"
	"github.com/pixil98/gonorth-export/internal/snippets"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("renderaction", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "config.json", "exporter config file")
	project := fs.String("project", "", "project id, defaults to the default project")
	npc := fs.String("npc", "", "id of the npc owning the dialog")
	actionPath := fs.String("action", "", "action node file (json or yaml)")
	snippetPath := fs.String("snippet", "", "export snippet file (json or yaml)")
	preview := fs.Bool("preview", false, "print the preview text instead of code")
	lang := fs.String("lang", "", "preview language")
	width := fs.Int("width", display.DefaultWidth, "report width")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if (*actionPath == "") == (*snippetPath == "") {
		fmt.Fprintln(stderr, "exactly one of -action and -snippet is required")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}

	svc, _, err := command.BuildService(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "building renderer: %v\n", err)
		return 1
	}

	req := &exportsvc.RenderRequest{
		RequestId: "cli",
		ProjectId: *project,
		NpcId:     *npc,
		Language:  *lang,
		Preview:   *preview,
	}
	if *actionPath != "" {
		req.Action = &actions.ActionNode{}
		err = decodeFile(*actionPath, req.Action)
	} else {
		req.Snippet = &snippets.ExportSnippet{}
		err = decodeFile(*snippetPath, req.Snippet)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	resp := svc.Render(ctx, req)
	if resp.Error != "" {
		fmt.Fprintln(stderr, display.Wrap(resp.Error, *width))
		return 1
	}

	switch {
	case *preview && req.Action != nil:
		fmt.Fprintln(stdout, resp.Preview)
	case req.Action != nil:
		fmt.Fprint(stdout, resp.Code)
	default:
		for _, f := range resp.Functions {
			if f.ParentPreviewText != "" {
				fmt.Fprintf(stdout, "-- %s (%s)\n", f.FunctionName, f.ParentPreviewText)
			} else {
				fmt.Fprintf(stdout, "-- %s\n", f.FunctionName)
			}
			fmt.Fprint(stdout, f.Code)
		}
	}

	if report := display.Report(resp.Errors, *width); report != "" {
		fmt.Fprint(stderr, report)
		return 3
	}
	return 0
}

func loadConfig(path string) (*command.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &command.Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
