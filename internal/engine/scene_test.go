package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Light")
	obj3 := NewGameObject("Camera")

	obj1.Tags = []string{"follows", "player"}
	obj2.Tags = []string{"follows"}
	obj3.Tags = []string{"camera"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	followers := scene.FindByTag("follows")
	if len(followers) != 2 {
		t.Errorf("Expected 2 followers, got %d", len(followers))
	}

	cameras := scene.FindByTag("camera")
	if len(cameras) != 1 {
		t.Errorf("Expected 1 camera, got %d", len(cameras))
	}

	notFound := scene.FindByTag("nonexistent")
	if len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneFindComponent(t *testing.T) {
	scene := NewScene("Test")
	empty := NewGameObject("Empty")
	holder := NewGameObject("Holder")
	comp := &drawCounter{}
	holder.AddComponent(comp)

	scene.AddGameObject(empty)
	scene.AddGameObject(holder)

	found, ok := FindComponent[*drawCounter](scene)
	if !ok || found != comp {
		t.Error("FindComponent failed")
	}

	if _, ok := FindComponent[*BaseComponent](scene); ok {
		t.Error("FindComponent should report a missing type")
	}
}

func TestSceneStartUpdate(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")
	comp := &drawCounter{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	scene.Start()
	scene.Start()
	scene.Update(0.016)

	if comp.starts != 1 || comp.updates != 1 {
		t.Errorf("Expected one call each, got start=%d update=%d", comp.starts, comp.updates)
	}
}

func TestEventInvokesListeners(t *testing.T) {
	var ev Event
	count := 0
	ev.AddListener(func() { count++ })
	ev.AddListener(nil)
	ev.AddListener(func() { count += 10 })

	ev.Invoke()

	if count != 11 {
		t.Errorf("Expected 11, got %d", count)
	}
	if ev.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", ev.ListenerCount())
	}

	ev.RemoveAllListeners()
	ev.Invoke()
	if count != 11 {
		t.Error("Removed listeners should not fire")
	}
}

func TestEventWithArg(t *testing.T) {
	var ev EventWithArg[string]
	var got []string
	ev.AddListener(func(s string) { got = append(got, s) })

	ev.Invoke("arrived")

	if len(got) != 1 || got[0] != "arrived" {
		t.Errorf("Expected [arrived], got %v", got)
	}
}
