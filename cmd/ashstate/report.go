package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Borislavv/go-ash-state/config"
	"github.com/Borislavv/go-ash-state/hook"
	"github.com/Borislavv/go-ash-state/limit"
)

type report struct {
	Name         string         `yaml:"name"`
	DisableODE   bool           `yaml:"disable_ode"`
	TableOptions map[string]any `yaml:"table_options"`
	DefaultTTL   string         `yaml:"default_ttl,omitempty"`
	Fallback     bool           `yaml:"fallback"`
	FallbackArgs []any          `yaml:"fallback_args"`
	Janitor      *janitorReport `yaml:"janitor,omitempty"`
	Limit        *limit.Spec    `yaml:"limit,omitempty"`
	Manager      string         `yaml:"manager"`
	PreHooks     []hookReport   `yaml:"pre_hooks"`
	PostHooks    []hookReport   `yaml:"post_hooks"`
	Transactions bool           `yaml:"transactions"`
}

type janitorReport struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval"`
}

type hookReport struct {
	Name    string `yaml:"name,omitempty"`
	Impl    string `yaml:"impl"`
	Sync    bool   `yaml:"sync,omitempty"`
	Timeout string `yaml:"timeout,omitempty"`
}

func newReport(st *config.State) report {
	r := report{
		Name:         st.Name,
		DisableODE:   st.DisableODE,
		TableOptions: st.TableOptions,
		Fallback:     st.Fallback != nil,
		FallbackArgs: st.FallbackArgs,
		Limit:        st.Limit,
		Manager:      st.Manager.String(),
		PreHooks:     hookReports(st.PreHooks),
		PostHooks:    hookReports(st.PostHooks),
		Transactions: st.Transactions,
	}
	if st.HasDefaultTTL() {
		r.DefaultTTL = st.DefaultTTL.String()
	}
	if st.Janitor.Enabled() {
		r.Janitor = &janitorReport{Name: st.Janitor.Name.String(), Interval: st.Janitor.Interval.String()}
	}
	return r
}

func hookReports(hooks []hook.Descriptor) []hookReport {
	out := make([]hookReport, 0, len(hooks))
	for _, h := range hooks {
		hr := hookReport{Name: h.Name.String(), Impl: fmt.Sprintf("%T", h.Impl), Sync: h.Sync}
		if h.Timeout > 0 {
			hr.Timeout = h.Timeout.String()
		}
		out = append(out, hr)
	}
	return out
}

func writeReport(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
