package cache

import "testing"

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	if got := c.GetOrDefault("k", "def"); got != "def" {
		t.Errorf("GetOrDefault missing = %v, want def", got)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", "def"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("k", "x", 0, nil)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestTags(t *testing.T) {
	c := NewCache()
	c.Set("p1", 1, 0, []string{"category:rings"})
	c.Set("p2", 2, 0, []string{"category:rings"})
	c.Set("p3", 3, 0, []string{"category:earrings"})

	keys := c.GetKeysByTag("category:rings")
	if len(keys) != 2 {
		t.Fatalf("GetKeysByTag len = %d, want 2", len(keys))
	}

	c.DeleteByTag("category:rings")
	if _, ok := c.Get("p1"); ok {
		t.Error("DeleteByTag: p1 should be gone")
	}
	if _, ok := c.Get("p2"); ok {
		t.Error("DeleteByTag: p2 should be gone")
	}
	if _, ok := c.Get("p3"); !ok {
		t.Error("DeleteByTag: p3 should survive")
	}
}
