package fragment

import (
	"context"
	"strings"

	"github.com/timvw/tmux-fragments/internal/model"
	"go.uber.org/zap"
)

// SysInfo is the data rendered into a sys fragment. Empty fields mean the
// value was unavailable.
type SysInfo struct {
	System  string
	Shell   string
	Aliases string
}

// Render formats the info as a system_info block. The shape is fixed
// whether or not any field is empty.
func (s SysInfo) Render() string {
	var b strings.Builder
	b.WriteString("<system_info>\n")
	b.WriteString("<system>" + s.System + "</system>\n")
	b.WriteString("<shell>" + s.Shell + "</shell>\n")
	b.WriteString("<aliases>\n" + s.Aliases + "\n</aliases>\n")
	b.WriteString("</system_info>")
	return b.String()
}

func (b *Builder) sysFragment(ctx context.Context) model.Fragment {
	info := b.gatherSysInfo(ctx)
	return model.Fragment{
		Source:  Prefix + ":sys",
		Content: info.Render(),
	}
}

// gatherSysInfo never fails: every lookup is best-effort. A failed alias
// lookup renders the same as a shell with no aliases; the difference is only
// visible in debug logs and the fallback counter.
func (b *Builder) gatherSysInfo(ctx context.Context) SysInfo {
	var info SysInfo

	if out, err := b.exec.Run(ctx, "uname", "-a"); err != nil {
		b.logger.Debug("uname failed", zap.Error(err))
		b.metrics.RecordFallback(ctx, "uname")
	} else {
		info.System = strings.TrimSpace(string(out))
	}

	info.Shell = b.shell
	if info.Shell == "" {
		info.Shell = b.getenv("SHELL")
	}
	if info.Shell == "" {
		return info
	}

	// Interactive so rc files defining the aliases are sourced.
	out, err := b.exec.Run(ctx, info.Shell, "-ic", "alias")
	if err != nil {
		b.logger.Debug("alias lookup failed", zap.String("shell", info.Shell), zap.Error(err))
		b.metrics.RecordFallback(ctx, "aliases")
		return info
	}
	info.Aliases = strings.TrimSpace(string(out))
	return info
}
