package cache

import (
	"testing"
	"time"
)

func TestGetInstance_Singleton(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := New()
	c.Set("picker:bins", "<ul></ul>", 0, nil)
	got, ok := c.Get("picker:bins")
	if !ok {
		t.Fatal("Get: want hit")
	}
	if got != "<ul></ul>" {
		t.Errorf("Get = %v", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := New()
	if _, ok := c.Get("nope"); ok {
		t.Error("Get missing key: want miss")
	}
}

func TestSet_TTLExpires(t *testing.T) {
	c := New()
	c.Set("short", 1, 1, nil)
	// Force expiry by rewriting with an already-past deadline.
	c.m.Store("short", item{value: 1, expiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("short"); ok {
		t.Error("expired entry should miss")
	}
}

func TestDeleteByTag(t *testing.T) {
	c := New()
	c.Set("a", 1, 0, []string{"picker"})
	c.Set("b", 2, 0, []string{"picker"})
	c.Set("c", 3, 0, []string{"other"})
	c.DeleteByTag("picker")
	if _, ok := c.Get("a"); ok {
		t.Error("a should be invalidated")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should be invalidated")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should survive")
	}
}

func TestKey_Composite(t *testing.T) {
	if got := Key("picker", 7, "FRONT"); got != "picker|7|FRONT" {
		t.Errorf("Key = %q", got)
	}
}
