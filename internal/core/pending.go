package core

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks a workflow that exists in the interface but has no
// implementation yet.
var ErrNotImplemented = errors.New("feature not implemented")

// Feature names a pending workflow.
type Feature string

const (
	FeatureAddDocument Feature = "add_document"
	FeatureAddContact  Feature = "add_contact"
	FeatureEditContact Feature = "edit_contact"
)

var featureLabels = map[Feature]string{
	FeatureAddDocument: "Ajout de document",
	FeatureAddContact:  "Ajout de contact",
	FeatureEditContact: "Édition de contact",
}

// Label is the user-facing name of the feature.
func (f Feature) Label() string {
	if l, ok := featureLabels[f]; ok {
		return l
	}
	return string(f)
}

// NotImplementedError is returned by pending workflows.
type NotImplementedError struct {
	Feature  Feature
	RecordID int64 // zero when the action does not target a record
}

func (e *NotImplementedError) Error() string {
	if e.RecordID != 0 {
		return fmt.Sprintf("%s (id %d): %v", e.Feature, e.RecordID, ErrNotImplemented)
	}
	return fmt.Sprintf("%s: %v", e.Feature, ErrNotImplemented)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }

// NotImplemented builds the error returned by a pending workflow.
func NotImplemented(f Feature, recordID int64) error {
	return &NotImplementedError{Feature: f, RecordID: recordID}
}
