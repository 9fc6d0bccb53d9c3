package engine

// GameObjectRef points at another GameObject in the same scene by UID.
// Level files use it to wire a controller to its orientation helper and camera.
type GameObjectRef struct {
	UID uint64 `yaml:"uid"` // 0 = none
}

// Get resolves the reference. Returns nil for an empty ref, a nil scene or a UID
// that is not in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
		return
	}
	r.UID = g.UID
}
