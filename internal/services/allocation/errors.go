package allocation

import "errors"

var (
	// ErrEmptyTitle means an edit or import row carried no title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrMissingID means an import row carried no id.
	ErrMissingID = errors.New("row id cannot be empty")

	// ErrDuplicateSheetID means two import rows share an id, or a row
	// reuses the id of an item already placed on a lane. The whole batch
	// is rejected.
	ErrDuplicateSheetID = errors.New("duplicate id in sheet")

	// ErrEmptySheet means the import carried no usable rows.
	ErrEmptySheet = errors.New("sheet has no rows")

	// ErrSheetNotPersisted means the batch was accepted onto the board
	// but the store write failed; the items live in memory only.
	ErrSheetNotPersisted = errors.New("sheet accepted but not persisted")
)
