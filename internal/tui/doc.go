// Package tui provides the Terminal User Interface for lon.
//
// This package implements the interactive colour browser using the Bubble Tea
// framework. Each colour library is a tab holding a grid of swatches that
// scrolls endlessly: the grid is laid over a virtual.Model, so the cursor
// moves through a logical range many times longer than the library and
// wraps at its ends.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: Maintains application state and business logic
//   - View: Renders the UI components and handles layout
//   - Controller: Manages user input and orchestrates updates
//
// # Core Components
//
// Model (internal/tui/model/):
//   - One Tab per library with its sorted backing list, virtual index,
//     cursor and scroll offset
//   - Search, detail lookup and status bar toasts
//   - The activity log fed from pkg/logging
//
// View (internal/tui/view/):
//   - Tab bar, swatch grid and status bar
//   - Overlays for colour details, help and logs
//   - Swatches are drawn through the SwatchRenderer interface
//
// Controller (internal/tui/controller/):
//   - Processes keyboard input per mode
//   - Seeds every tab at the middle of its range on the first window size
//   - Manages the Bubble Tea program lifecycle
//
// # Keyboard Navigation
//
//   - Arrows/hjkl: Move the cursor, wrapping through the logical range
//   - PgUp/PgDown: Move a screen at a time
//   - Tab/Shift+Tab: Switch library
//   - Enter: Show details and nearest colours
//   - y/c: Copy the hex value to the clipboard
//   - /: Search by name or hex
//   - s: Cycle the sort order
//   - L: Show log viewer
//   - ?: Show help overlay
//   - D: Toggle dark/light styles
//   - q/Ctrl+C: Quit application
//
// # Design System
//
// Styles live in internal/tui/design/ and adapt to light and dark
// terminals. Swatch labels pick black or white text by the colour's
// perceived lightness.
//
// # Usage Example
//
//	p, err := controller.NewProgram(model.TUIConfig{
//	    Catalog: cat,
//	    UI:      cfg.UI,
//	}, logChannel)
//	if err != nil {
//	    return err
//	}
//
//	// Run the TUI (blocks until user quits)
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
