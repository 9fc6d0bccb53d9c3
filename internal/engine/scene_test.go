package engine

import (
	"errors"
	"testing"
)

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if scene.FindByUID(obj.UID) != obj {
		t.Error("FindByUID failed for added object")
	}
	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Floor")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj2 {
		t.Errorf("Wrong GameObjects after removal: %v", scene.GameObjects)
	}
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
	if obj1.Scene != nil {
		t.Error("Removed GameObject still points at scene")
	}
}

func TestSceneFindByNameAndTag(t *testing.T) {
	scene := NewScene("Test")
	floor := NewGameObject("Floor")
	ramp := NewGameObject("Ramp")
	floor.Tags = []string{"ground"}
	ramp.Tags = []string{"ground", "slope"}
	scene.AddGameObject(floor)
	scene.AddGameObject(ramp)

	if scene.FindByName("Ramp") != ramp {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
	if n := len(scene.FindByTag("ground")); n != 2 {
		t.Errorf("Expected 2 ground objects, got %d", n)
	}
	if n := len(scene.FindByTag("nonexistent")); n != 0 {
		t.Errorf("Expected 0 objects, got %d", n)
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Bare"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // must not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

type stepCounter struct {
	BaseComponent
	steps   int
	lastNow float64
}

func (s *stepCounter) FixedUpdate(now float64, step float32) {
	s.steps++
	s.lastNow = now
}

func TestSceneFixedUpdateDispatch(t *testing.T) {
	scene := NewScene("Test")
	active := NewGameObject("Active")
	inactive := NewGameObject("Inactive")
	a := &stepCounter{}
	b := &stepCounter{}
	active.AddComponent(a)
	inactive.AddComponent(b)
	inactive.Active = false
	scene.AddGameObject(active)
	scene.AddGameObject(inactive)

	scene.FixedUpdate(0.02, 0.02)
	scene.FixedUpdate(0.04, 0.02)

	if a.steps != 2 {
		t.Errorf("Expected 2 fixed steps, got %d", a.steps)
	}
	if a.lastNow != 0.04 {
		t.Errorf("Expected now 0.04, got %f", a.lastNow)
	}
	if b.steps != 0 {
		t.Errorf("Inactive object should not step, got %d", b.steps)
	}
}

type failingActivator struct {
	BaseComponent
}

func (f *failingActivator) Activate() error {
	return errors.New("missing collaborator")
}

func TestSceneStartDeactivatesOnFailedActivation(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")
	counter := &stepCounter{}
	obj.AddComponent(&failingActivator{})
	obj.AddComponent(counter)
	scene.AddGameObject(obj)

	scene.Start()
	scene.FixedUpdate(0.02, 0.02)

	if obj.Active {
		t.Error("Object with failed activation should be inactive")
	}
	if obj.ActivationError() == nil {
		t.Error("Expected the activation error to be kept")
	}
	if counter.steps != 0 {
		t.Errorf("Inert object should not step, got %d", counter.steps)
	}
}
