package waf

import (
	"testing"

	"github.com/wafexport/wafexport/pkg/xc"
)

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != ModeUnknown {
		t.Errorf("Classify(nil) = %q, want unknown", got)
	}
}

func TestClassifyMonitoring(t *testing.T) {
	fw := &xc.AppFirewall{Spec: xc.AppFirewallSpec{Monitoring: &xc.Empty{}}}
	if got := Classify(fw); got != ModeMonitoring {
		t.Errorf("Classify = %q, want monitoring", got)
	}
}

func TestClassifyBlocking(t *testing.T) {
	fw := &xc.AppFirewall{Spec: xc.AppFirewallSpec{Blocking: &xc.Empty{}}}
	if got := Classify(fw); got != ModeBlocking {
		t.Errorf("Classify = %q, want blocking", got)
	}
}

func TestClassifyNeitherKey(t *testing.T) {
	fw := &xc.AppFirewall{Spec: xc.AppFirewallSpec{}}
	if got := Classify(fw); got != ModeUnknown {
		t.Errorf("Classify = %q, want unknown", got)
	}
}

// Both keys should not occur, but monitoring is checked first.
func TestClassifyBothKeysMonitoringWins(t *testing.T) {
	fw := &xc.AppFirewall{Spec: xc.AppFirewallSpec{
		Monitoring: &xc.Empty{},
		Blocking:   &xc.Empty{},
	}}
	if got := Classify(fw); got != ModeMonitoring {
		t.Errorf("Classify = %q, want monitoring", got)
	}
}
