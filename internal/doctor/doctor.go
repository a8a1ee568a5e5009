// Package doctor inspects a box and reports which pieces are present
// and which are missing. It only looks; fixing a box means re-running
// the preparation steps by hand.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"devinabox/internal/checkout"
	"devinabox/internal/display"
	"devinabox/internal/format"
	"devinabox/internal/layout"
	"devinabox/internal/logging"
	"devinabox/internal/platform"
)

// probeLimit bounds concurrent filesystem and PATH probes.
const probeLimit = 4

// lookPath is swapped in tests so tool verdicts do not depend on the
// host PATH.
var lookPath = exec.LookPath

// Kind classifies a check row.
type Kind string

const (
	KindCheckout Kind = "checkout"
	KindDocs     Kind = "docs"
	KindBinary   Kind = "binary"
	KindTool     Kind = "tool"
)

// Check is one verdict about the box.
type Check struct {
	Kind     Kind
	Name     string
	Detail   string
	OK       bool
	Required bool
}

// Report is the full inspection result for one family.
type Report struct {
	Family platform.Family
	Checks []Check
}

// Healthy reports whether every required check passed.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.Required && !c.OK {
			return false
		}
	}
	return true
}

// Missing lists the names of failed required checks, in report order.
func (r *Report) Missing() []string {
	var names []string
	for _, c := range r.Checks {
		if c.Required && !c.OK {
			names = append(names, c.Name)
		}
	}
	return names
}

// Render lays the report out as a table in the given mode. The footer
// counts passed checks against the total.
func Render(r *Report, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("", "Kind", "Item", "Detail")
	passed := 0
	for _, c := range r.Checks {
		if c.OK {
			passed++
		}
		name := c.Name
		if c.Required {
			name += " (required)"
		}
		tb.Row(format.BoolMark(c.OK), display.CheckKind(string(c.Kind)), name, format.Truncate(c.Detail, 60))
	}
	tb.Footer("", "", "", fmt.Sprintf("%d/%d present", passed, len(r.Checks)))
	tb.Columns(format.ColumnConfig{Number: 1, Align: format.AlignCenter})
	return tb.String()
}

// Run inspects the box at root for the given family. Probes are
// independent, so they run concurrently; the report order still
// follows the manifest.
func Run(ctx context.Context, root string, fam platform.Family) (*Report, error) {
	m, err := layout.Load()
	if err != nil {
		return nil, err
	}
	return inspect(ctx, m, root, fam)
}

type probe struct {
	check Check
	fn    func() (ok bool, detail string)
}

func inspect(ctx context.Context, m *layout.Manifest, root string, fam platform.Family) (*Report, error) {
	log := logging.New("doctor")

	var probes []probe
	for _, c := range m.Checkouts {
		c := c
		probes = append(probes, probe{
			check: Check{Kind: KindCheckout, Name: c.Name, Required: c.Required},
			fn: func() (bool, string) {
				info, err := os.Stat(filepath.Join(root, c.Dir))
				if err != nil || !info.IsDir() {
					return false, c.Dir + " missing"
				}
				return true, c.Dir
			},
		})
		if c.DocIndex != "" {
			c := c
			probes = append(probes, probe{
				check: Check{Kind: KindDocs, Name: c.Name + " docs"},
				fn: func() (bool, string) {
					info, err := os.Stat(filepath.Join(root, c.DocIndex))
					if err != nil || !info.Mode().IsRegular() {
						return false, "not built"
					}
					return true, c.DocIndex
				},
			})
		}
	}

	probes = append(probes, probe{
		check: Check{Kind: KindBinary, Name: "interpreter"},
		fn: func() (bool, string) {
			path, ok := checkout.Locate(root, fam)
			if !ok {
				return false, "not built"
			}
			return true, path
		},
	})

	for _, tool := range m.ToolsFor(fam) {
		tool := tool
		probes = append(probes, probe{
			check: Check{Kind: KindTool, Name: tool.Name, Required: tool.Required},
			fn: func() (bool, string) {
				for _, cmd := range tool.Commands {
					if path, err := lookPath(cmd); err == nil {
						return true, path
					}
				}
				return false, "not on PATH"
			},
		})
	}

	checks := make([]Check, len(probes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(probeLimit)
	for i, p := range probes {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := p.check
			c.OK, c.Detail = p.fn()
			checks[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Family: fam, Checks: checks}
	log.Info("inspection complete", "family", fam, "checks", len(checks), "healthy", rep.Healthy())
	return rep, nil
}
