package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	LeaveTypeID string `form:"leave_type_id" validate:"required" label:"Leave type"`
	StartDate   string `form:"start_date"    validate:"required,date"`
	Reason      string `form:"reason"        validate:"required,max=10"`
	Email       string `form:"email"         validate:"omitempty,email"`
	Role        string `form:"role"          validate:"omitempty,role"`
	Days        int    `form:"days"          validate:"min=1,max=365"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(sampleForm{
		LeaveTypeID: "annual",
		StartDate:   "2024-03-01",
		Reason:      "holiday",
		Email:       "ada@example.com",
		Role:        "manager",
		Days:        10,
	})
	assert.Nil(t, errs)
}

func TestStruct_FieldMessages(t *testing.T) {
	errs := Struct(&sampleForm{
		StartDate: "03/01/2024",
		Reason:    "far too long a reason",
		Email:     "not-an-email",
		Role:      "owner",
		Days:      0,
	})

	assert.Equal(t, map[string]string{
		"leave_type_id": "Leave type is required.",
		"start_date":    "Start Date must be a valid date.",
		"reason":        "Reason cannot exceed 10 characters.",
		"email":         "Enter a valid email address.",
		"role":          "Role must be one of: employee, manager, admin.",
		"days":          "Days must be at least 1.",
	}, errs)
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Start Date", FieldLabel("start_date"))
	assert.Equal(t, "Reason", FieldLabel("reason"))
}
