package domain

import "errors"

var (
	ErrEmptyChange       = errors.New("change text is empty")
	ErrUnknownChangeKind = errors.New("unknown change kind")
	ErrChangeLogNotFound = errors.New("change log not found")
	ErrAnchorNotFound    = errors.New("anchor not found")
	ErrAmbiguousAnchor   = errors.New("anchor is ambiguous")
	ErrUnanchoredChange  = errors.New("change has no anchor")
)
