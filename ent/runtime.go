// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/drill/ent/problem"
	"github.com/abhisek/drill/ent/review"
	"github.com/abhisek/drill/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	problemMixin := schema.Problem{}.Mixin()
	problemMixinFields0 := problemMixin[0].Fields()
	_ = problemMixinFields0
	problemFields := schema.Problem{}.Fields()
	_ = problemFields
	// problemDescCreatedDate is the schema descriptor for created_date field.
	problemDescCreatedDate := problemMixinFields0[0].Descriptor()
	// problem.DefaultCreatedDate holds the default value on creation for the created_date field.
	problem.DefaultCreatedDate = problemDescCreatedDate.Default.(func() time.Time)
	// problemDescName is the schema descriptor for name field.
	problemDescName := problemFields[0].Descriptor()
	// problem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	problem.NameValidator = problemDescName.Validators[0].(func(string) error)
	// problemDescSuspended is the schema descriptor for suspended field.
	problemDescSuspended := problemFields[1].Descriptor()
	// problem.DefaultSuspended holds the default value on creation for the suspended field.
	problem.DefaultSuspended = problemDescSuspended.Default.(bool)
	reviewMixin := schema.Review{}.Mixin()
	reviewMixinFields0 := reviewMixin[0].Fields()
	_ = reviewMixinFields0
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescCreatedDate is the schema descriptor for created_date field.
	reviewDescCreatedDate := reviewMixinFields0[0].Descriptor()
	// review.DefaultCreatedDate holds the default value on creation for the created_date field.
	review.DefaultCreatedDate = reviewDescCreatedDate.Default.(func() time.Time)
}
