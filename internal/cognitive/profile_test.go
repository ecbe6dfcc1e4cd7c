package cognitive

import (
	"testing"

	"github.com/abhisek/skillforge/internal/history"
)

func TestProfile_ApplyPartial(t *testing.T) {
	p := Profile{AverageSpeed: 10, AverageAccuracy: 0.5, GuessPattern: 0.1, HesitationScore: 0.2, ImpulsivityIndex: 0.3}
	got := p.Apply(ProfileDelta{HesitationScore: ptr(0.7)})

	want := p
	want.HesitationScore = 0.7
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if p.HesitationScore != 0.2 {
		t.Error("Apply mutated receiver")
	}
}

func TestProfile_ApplyClamps(t *testing.T) {
	got := Profile{}.Apply(ProfileDelta{
		AverageSpeed:     ptr(-4),
		AverageAccuracy:  ptr(1.5),
		ImpulsivityIndex: ptr(-0.1),
	})
	if got.AverageSpeed != 0 || got.AverageAccuracy != 1 || got.ImpulsivityIndex != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestAverages(t *testing.T) {
	if d := Averages(nil); !d.Empty() {
		t.Errorf("Averages(nil) = %+v, want empty", d)
	}

	h := history.Log{at("A", true, 10), at("A", false, 20), at("A", true, 30), at("A", true, 40)}
	d := Averages(h)
	if *d.AverageSpeed != 25 {
		t.Errorf("averageSpeed = %v, want 25", *d.AverageSpeed)
	}
	if *d.AverageAccuracy != 0.75 {
		t.Errorf("averageAccuracy = %v, want 0.75", *d.AverageAccuracy)
	}
	if d.GuessPattern != nil || d.HesitationScore != nil || d.ImpulsivityIndex != nil {
		t.Error("Averages should not set pattern scores")
	}
}

func TestProfileDelta_Merge(t *testing.T) {
	a := ProfileDelta{AverageSpeed: ptr(1), GuessPattern: ptr(0.1)}
	b := ProfileDelta{GuessPattern: ptr(0.6)}
	got := a.Merge(b)
	if *got.AverageSpeed != 1 || *got.GuessPattern != 0.6 {
		t.Errorf("got speed=%v guess=%v", *got.AverageSpeed, *got.GuessPattern)
	}
}

type fixedDetector struct{ name string }

func (d *fixedDetector) Name() string { return d.name }
func (d *fixedDetector) Detect(history.Log) ([]Insight, ProfileDelta) {
	return []Insight{{Type: InsightApplication, Severity: SeverityLow, Message: d.name}}, ProfileDelta{}
}

func TestRunDetectors_Independent(t *testing.T) {
	insights, _ := RunDetectors([]Detector{&fixedDetector{"one"}, &fixedDetector{"two"}}, history.Log{at("A", true, 1)})
	if len(insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(insights))
	}
	if insights[0].Detector != "one" || insights[1].Detector != "two" {
		t.Errorf("detector names = %q, %q", insights[0].Detector, insights[1].Detector)
	}
}
