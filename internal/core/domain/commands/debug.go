package commands

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
)

// Debug reports runtime statistics and the size of the command table.
type Debug struct {
	names
	directory *command.Directory
}

func NewDebug(directory *command.Directory, name string, aliases ...string) *Debug {
	return &Debug{names: newNames(name, aliases), directory: directory}
}

const kb = 1024
const debugTemplate = `allocated mem: %d KB
threads running: %d
heap: %d KB
stack: %d KB
commands: %d keys in %d modules
compiled with %s for %s-%s
`
const metricCount = 3

func (d *Debug) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, d.Name())

	data := make([]metrics.Sample, metricCount)
	data[0] = metrics.Sample{Name: "/memory/classes/heap/objects:bytes"}
	data[1] = metrics.Sample{Name: "/memory/classes/heap/stacks:bytes"}
	data[2] = metrics.Sample{Name: "/memory/classes/total:bytes"}

	metrics.Read(data)

	for _, sample := range data {
		l.Debug().Str("name", sample.Name).Msgf("%d", sample.Value.Uint64())
	}

	l.Info().Msg("handling request")

	var goos, goarch string
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "GOOS":
				goos = setting.Value
			case "GOARCH":
				goarch = setting.Value
			}
		}
	}

	return inv.Reply(ctx, fmt.Sprintf(
		debugTemplate,
		data[2].Value.Uint64()/kb,
		runtime.NumGoroutine(),
		data[0].Value.Uint64()/kb,
		data[1].Value.Uint64()/kb,
		d.directory.TotalSize(),
		len(d.directory.Modules()),
		runtime.Version(), goos, goarch,
	))
}

func (d *Debug) Help(inv *command.Invocation) string {
	return inv.Usage("") + "\n# " + inv.T("helpDebugCommand")
}

func (d *Debug) MinimumPermission() domain.PermissionLevel {
	return domain.PermBotAdmin
}
