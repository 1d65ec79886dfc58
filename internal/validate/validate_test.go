package validate_test

import (
	"context"
	"testing"

	"github.com/harborworks/fleetdeck/internal/validate"
	"github.com/harborworks/fleetdeck/pkg/models"
)

func TestCheck_Ship(t *testing.T) {
	v, err := validate.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	good := models.Ship{Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipActive}
	msgs, err := v.Check(ctx, validate.EntityShip, good)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("valid ship flagged: %v", msgs)
	}

	bad := models.Ship{Name: "", IMO: "abc", Flag: "Panama", Status: "Sunk"}
	msgs, err = v.Check(ctx, validate.EntityShip, bad)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatalf("invalid ship passed")
	}
}

func TestCheck_Component(t *testing.T) {
	v, err := validate.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	good := models.ShipComponent{
		ShipID:              "s1",
		Name:                "Main Engine",
		SerialNumber:        "ME-1234",
		InstallDate:         "2020-01-10",
		LastMaintenanceDate: "2024-03-12",
	}
	msgs, err := v.Check(ctx, validate.EntityComponent, good)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("valid component flagged: %v", msgs)
	}

	bad := good
	bad.InstallDate = "January 10th 2020"
	msgs, err = v.Check(ctx, validate.EntityComponent, bad)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatalf("malformed install date passed")
	}
}

func TestCheck_Job(t *testing.T) {
	v, err := validate.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	good := models.Job{
		ComponentID:        "c1",
		ShipID:             "s1",
		Type:               models.JobInspection,
		Priority:           models.PriorityHigh,
		Status:             models.JobOpen,
		AssignedEngineerID: "3",
		ScheduledDate:      "2025-05-05",
	}
	msgs, err := v.Check(ctx, validate.EntityJob, good)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("valid job flagged: %v", msgs)
	}

	bad := good
	bad.Type = "Scrub"
	bad.Priority = "Urgent"
	msgs, err = v.Check(ctx, validate.EntityJob, bad)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatalf("out-of-enum job passed")
	}
}

func TestCheck_UnknownEntity(t *testing.T) {
	v, err := validate.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := v.Check(context.Background(), "submarine", map[string]any{}); err == nil {
		t.Fatalf("expected error for unknown entity name")
	}
}
