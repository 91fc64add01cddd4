//go:build windows

package shellreg

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

func add(exe string) error {
	key, _, err := registry.CreateKey(registry.CLASSES_ROOT, KeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", KeyPath, err)
	}
	defer key.Close()

	if err := key.SetStringValue("", MenuLabel); err != nil {
		return fmt.Errorf("failed to set menu label: %w", err)
	}

	cmdKey, _, err := registry.CreateKey(registry.CLASSES_ROOT, CommandPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", CommandPath, err)
	}
	defer cmdKey.Close()

	if err := cmdKey.SetStringValue("", Command(exe)); err != nil {
		return fmt.Errorf("failed to set command: %w", err)
	}
	return nil
}

func remove() error {
	// Subkeys must be deleted before their parent.
	if err := registry.DeleteKey(registry.CLASSES_ROOT, CommandPath); err != nil {
		return fmt.Errorf("failed to delete %s: %w", CommandPath, err)
	}
	if err := registry.DeleteKey(registry.CLASSES_ROOT, KeyPath); err != nil {
		return fmt.Errorf("failed to delete %s: %w", KeyPath, err)
	}
	return nil
}
