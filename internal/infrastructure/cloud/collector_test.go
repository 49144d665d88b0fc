package cloud

import "testing"

func clearRegionVars(t *testing.T) {
	t.Helper()
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_PROFILE_REGION", "")
}

func TestProfile(t *testing.T) {
	t.Setenv("AWS_PROFILE", "dev")

	got, present := NewCollector().Profile()
	if !present || got != "dev" {
		t.Fatalf("Profile() = %q, %v; want dev, true", got, present)
	}
}

func TestProfileAbsentWhenUnset(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")

	if _, present := NewCollector().Profile(); present {
		t.Fatal("expected absent profile")
	}
}

func TestRegionPrimaryWinsOverAll(t *testing.T) {
	clearRegionVars(t)
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_DEFAULT_REGION", "us-east-1")
	t.Setenv("AWS_PROFILE_REGION", "ap-south-1")

	got, present := NewCollector().Region()
	if !present || got != "eu-west-1" {
		t.Fatalf("Region() = %q, %v; want eu-west-1, true", got, present)
	}
}

func TestRegionFallsBackToDefaultRegion(t *testing.T) {
	clearRegionVars(t)
	t.Setenv("AWS_DEFAULT_REGION", "us-east-1")
	t.Setenv("AWS_PROFILE_REGION", "ap-south-1")

	got, present := NewCollector().Region()
	if !present || got != "us-east-1" {
		t.Fatalf("Region() = %q, %v; want us-east-1, true", got, present)
	}
}

func TestRegionFallsBackToProfileRegion(t *testing.T) {
	clearRegionVars(t)
	t.Setenv("AWS_PROFILE_REGION", "ap-south-1")

	got, present := NewCollector().Region()
	if !present || got != "ap-south-1" {
		t.Fatalf("Region() = %q, %v; want ap-south-1, true", got, present)
	}
}

func TestRegionAbsentWhenNoneSet(t *testing.T) {
	clearRegionVars(t)

	if _, present := NewCollector().Region(); present {
		t.Fatal("expected absent region")
	}
}
