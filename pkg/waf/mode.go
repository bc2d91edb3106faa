package waf

import "github.com/wafexport/wafexport/pkg/xc"

// Mode is the enforcement mode of an app firewall. It is a closed
// enumeration; ModeUnknown covers an absent object and a malformed one
// (neither mode key present).
type Mode string

const (
	ModeMonitoring Mode = "monitoring"
	ModeBlocking   Mode = "blocking"
	ModeUnknown    Mode = ""
)

// Classify inspects a firewall's spec and reports its enforcement mode.
// The monitoring key is checked before blocking; the two are mutually
// exclusive in the source system, so only presence matters.
func Classify(fw *xc.AppFirewall) Mode {
	if fw == nil {
		return ModeUnknown
	}
	if fw.Spec.Monitoring != nil {
		return ModeMonitoring
	}
	if fw.Spec.Blocking != nil {
		return ModeBlocking
	}
	return ModeUnknown
}
