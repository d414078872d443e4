// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DuesColumns holds the columns for the "dues" table.
	DuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "problem_id", Type: field.TypeInt, Unique: true},
	}
	// DuesTable holds the schema information for the "dues" table.
	DuesTable = &schema.Table{
		Name:       "dues",
		Columns:    DuesColumns,
		PrimaryKey: []*schema.Column{DuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dues_problems_due",
				Columns:    []*schema.Column{DuesColumns[2]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProblemsColumns holds the columns for the "problems" table.
	ProblemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_date", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "suspended", Type: field.TypeBool, Default: false},
		{Name: "suspend_reason", Type: field.TypeString, Nullable: true},
	}
	// ProblemsTable holds the schema information for the "problems" table.
	ProblemsTable = &schema.Table{
		Name:       "problems",
		Columns:    ProblemsColumns,
		PrimaryKey: []*schema.Column{ProblemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problem_created_date",
				Unique:  false,
				Columns: []*schema.Column{ProblemsColumns[1]},
			},
			{
				Name:    "problem_name",
				Unique:  false,
				Columns: []*schema.Column{ProblemsColumns[2]},
			},
			{
				Name:    "problem_suspended",
				Unique:  false,
				Columns: []*schema.Column{ProblemsColumns[3]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_date", Type: field.TypeTime},
		{Name: "correct", Type: field.TypeBool},
		{Name: "problem_id", Type: field.TypeInt},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_problems_reviews",
				Columns:    []*schema.Column{ReviewsColumns[3]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_created_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[1]},
			},
			{
				Name:    "review_problem_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DuesTable,
		ProblemsTable,
		ReviewsTable,
	}
)

func init() {
	DuesTable.ForeignKeys[0].RefTable = ProblemsTable
	ReviewsTable.ForeignKeys[0].RefTable = ProblemsTable
}
