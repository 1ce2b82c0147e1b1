package prefabs

import "testing"

func TestLoadActorSpec(t *testing.T) {
	cases := []struct {
		file     string
		name     string
		behavior string
		frameW   int
		dedup    bool
	}{
		{"strider.yaml", "strider", "strider", 48, true},
		{"drifter.yaml", "drifter", "drifter", 40, false},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			spec, err := LoadActorSpec(c.file)
			if err != nil {
				t.Fatalf("LoadActorSpec(%s): %v", c.file, err)
			}
			if spec.Name != c.name {
				t.Fatalf("name = %q, want %q", spec.Name, c.name)
			}
			if spec.Behavior != c.behavior {
				t.Fatalf("behavior = %q, want %q", spec.Behavior, c.behavior)
			}
			if spec.FrameWidth != c.frameW {
				t.Fatalf("frame width = %d, want %d", spec.FrameWidth, c.frameW)
			}
			if spec.Deduplicate != c.dedup {
				t.Fatalf("deduplicate = %v, want %v", spec.Deduplicate, c.dedup)
			}
			if _, ok := spec.Animations["IDLE"]; !ok {
				t.Fatalf("%s has no IDLE sequence", c.file)
			}
			if spec.Shading.WidthScale <= 0 {
				t.Fatalf("width scale must be positive")
			}
		})
	}
}

func TestLoadActorSpecMissing(t *testing.T) {
	if _, err := LoadActorSpec("no_such_actor.yaml"); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

func TestActorFiles(t *testing.T) {
	files, err := ActorFiles()
	if err != nil {
		t.Fatalf("ActorFiles: %v", err)
	}
	if len(files) < 2 {
		t.Fatalf("expected at least 2 actor prefabs, got %v", files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("files not sorted: %v", files)
		}
	}
}
