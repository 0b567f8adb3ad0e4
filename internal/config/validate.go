package config

import (
	"errors"
	"fmt"

	"lon/internal/color"
)

var (
	ErrInvalidMultiplier = errors.New("ui.multiplier must be at least 1")
	ErrInvalidGrid       = errors.New("invalid grid dimensions")
)

// Validate checks values that the loader cannot check by decoding alone.
func Validate(cfg LonConfig) error {
	var errs []error

	if cfg.UI.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidMultiplier, cfg.UI.Multiplier))
	}
	if _, err := color.ParseLibrary(cfg.UI.DefaultLibrary); err != nil {
		errs = append(errs, fmt.Errorf("ui.defaultLibrary: %w", err))
	}
	if _, err := color.ParseSortOrder(cfg.UI.SortOrder); err != nil {
		errs = append(errs, fmt.Errorf("ui.sortOrder: %w", err))
	}
	if cfg.UI.CellWidth < 4 || cfg.UI.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("%w: cells must be at least 4x1, got %dx%d",
			ErrInvalidGrid, cfg.UI.CellWidth, cfg.UI.CellHeight))
	}
	if cfg.UI.MinColumns < 1 || cfg.UI.MaxColumns < cfg.UI.MinColumns {
		errs = append(errs, fmt.Errorf("%w: need 1 <= minColumns <= maxColumns, got %d and %d",
			ErrInvalidGrid, cfg.UI.MinColumns, cfg.UI.MaxColumns))
	}
	if cfg.UI.ToastTimeout < 0 {
		errs = append(errs, fmt.Errorf("ui.toastTimeout must not be negative, got %s", cfg.UI.ToastTimeout))
	}

	return errors.Join(errs...)
}
