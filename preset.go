package flicker

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// presetItemStore is the subset of *gdata.Manager used by PresetStore.
type presetItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	ItemExists(itemKey string) bool
	DeleteItem(itemKey string) error
}

const presetKeyPrefix = "emitter-"

// PresetStore persists named emitter configurations in the platform's
// application data directory.
type PresetStore struct {
	items presetItemStore
}

// OpenPresetStore opens (or creates) the preset storage for appName.
func OpenPresetStore(appName string) (*PresetStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open preset store: %w", err)
	}
	return &PresetStore{items: m}, nil
}

// Save stores cfg under name.
func (p *PresetStore) Save(name string, cfg EmitterConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode preset %q: %w", name, err)
	}
	if err := p.items.SaveItem(presetKeyPrefix+name, data); err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}
	return nil
}

// Load returns the preset stored under name. Fields missing from the stored
// document take their defaults. ok is false when no preset exists.
func (p *PresetStore) Load(name string) (cfg EmitterConfig, ok bool, err error) {
	key := presetKeyPrefix + name
	if !p.items.ItemExists(key) {
		return DefaultEmitterConfig(), false, nil
	}
	data, err := p.items.LoadItem(key)
	if err != nil {
		return EmitterConfig{}, false, fmt.Errorf("load preset %q: %w", name, err)
	}
	cfg, err = ParseEmitterConfig(data)
	if err != nil {
		return EmitterConfig{}, false, fmt.Errorf("load preset %q: %w", name, err)
	}
	return cfg, true, nil
}

// Delete removes the preset stored under name. Deleting a missing preset is
// a no-op.
func (p *PresetStore) Delete(name string) error {
	key := presetKeyPrefix + name
	if !p.items.ItemExists(key) {
		return nil
	}
	if err := p.items.DeleteItem(key); err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	return nil
}
