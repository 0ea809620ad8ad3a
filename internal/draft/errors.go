package draft

import "errors"

// ErrInvalidConfiguration is returned by NewDraft for malformed draft
// configuration (zero teams, non-positive roster size, bad pool). Fatal:
// there is no draft to recover.
var ErrInvalidConfiguration = errors.New("invalid draft configuration")

// ErrInvalidPick is returned by ApplyPick for a rejected pick (already
// drafted, no eligible roster slot, draft complete). Recoverable: the
// draft state is unchanged and the caller should re-prompt.
var ErrInvalidPick = errors.New("invalid pick")
