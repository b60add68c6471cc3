// Package stringx provides the whitespace and text helpers shared by corekit
// packages.
//
// Package: stringx
// Title: String Helpers for corekit
// Description: Blank checks, whitespace trimming and rune-safe truncation.
//              Whitespace follows the classic definition used by most date
//              and config formats: Unicode spaces except the no-break
//              variants, which count as content.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Reduced to the helpers used by timex, config and the CLI
//
// Usage
//
//	if stringx.IsBlank(text) {
//		return time.Time{}, nil
//	}
//	text = stringx.TrimWhitespace(text)
//
//	zone := stringx.FirstNonBlank(flagZone, cfg.GetString("parser.fallback_zone"), "Local")
package stringx
