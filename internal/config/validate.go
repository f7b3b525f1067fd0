package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims string fields and returns a normalized
// copy plus everything a UI needs to show about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Source.URL = strings.TrimSpace(out.Source.URL)
	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	// markers are matched literally against the document; only strip
	// the newline artifacts yaml folding can introduce
	out.Source.StartMarker = strings.Trim(out.Source.StartMarker, "\r\n")
	out.Source.EndMarker = strings.Trim(out.Source.EndMarker, "\r\n")

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Source.URL == "" {
		res.addErr("source.url is required")
	} else if u, err := url.Parse(out.Source.URL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("source.url must be an absolute URL: %q", out.Source.URL)
	}

	if out.Source.StartMarker == "" {
		res.addErr("source.start_marker is required")
	}
	if out.Source.EndMarker == "" {
		res.addErr("source.end_marker is required")
	}
	if out.Source.StartMarker != "" && out.Source.StartMarker == out.Source.EndMarker {
		res.addErr("source.start_marker and source.end_marker must differ")
	}

	if out.Source.MinFetchIntervalSeconds < 0 {
		res.addErr("source.min_fetch_interval_seconds must be >= 0")
	}
	if out.Source.AutoRefreshSeconds < 0 {
		res.addErr("source.auto_refresh_seconds must be >= 0 (0 disables)")
	}
	if out.Source.AutoRefreshSeconds > 0 && out.Source.AutoRefreshSeconds < 60 {
		res.addWarn("source.auto_refresh_seconds is very low (%d); the upstream host may rate limit.", out.Source.AutoRefreshSeconds)
	}

	return out, res
}

// Validate is the hard gate used before persisting a config.
func Validate(cfg Config) error {
	_, res := NormalizeAndValidate(cfg)
	if res.OK() {
		return nil
	}

	var err *multierror.Error
	for _, e := range res.Errors {
		err = multierror.Append(err, fmt.Errorf("%s", e))
	}
	return err.ErrorOrNil()
}
