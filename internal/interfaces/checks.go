package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/services"
)

// =============================================================================
// Service layer
// =============================================================================

// Journal implementations
var _ services.Journal = (*audit.Auditor)(nil)

// RequestDrainer implementations
var _ scheduler.RequestDrainer = (*services.LibraryService)(nil)

// =============================================================================
// HTTP
// =============================================================================

var _ http.LibraryStore = (*services.LibraryService)(nil)
var _ http.RequestRunner = (*scheduler.RequestProcessor)(nil)
