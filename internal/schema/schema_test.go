package schema

import (
	"testing"

	"github.com/foliosite/backend/internal/model"
)

// hasFieldError reports whether errs contains an entry for the given JSON
// field name and rule.
func hasFieldError(errs []FieldError, field, rule string) bool {
	for _, e := range errs {
		if e.Field == field && e.Rule == rule {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Project
// ---------------------------------------------------------------------------

func TestValidate_ProjectCreate_MissingRequired(t *testing.T) {
	errs := Validate(ProjectCreate{})
	if errs == nil {
		t.Fatal("expected validation errors for empty payload")
	}
	for _, field := range []string{"title", "slug", "category", "shortDescription"} {
		if !hasFieldError(errs, field, "required") {
			t.Errorf("expected required error for %q, got %v", field, errs)
		}
	}
}

func TestValidate_ProjectCreate_MetricFields(t *testing.T) {
	in := ProjectCreate{
		Title:            "T",
		Slug:             "t",
		Category:         "Engineering",
		ShortDescription: "d",
		Metrics:          []model.Metric{{Label: "Users", Value: ""}},
	}
	errs := Validate(in)
	if errs == nil {
		t.Fatal("expected validation error for metric with empty value")
	}
}

func TestProjectCreate_ToModel_Defaults(t *testing.T) {
	p := ProjectCreate{
		Title:            "T",
		Slug:             "t",
		Category:         "Engineering",
		ShortDescription: "d",
	}.ToModel()

	if !p.Published {
		t.Error("published should default to true")
	}
	if p.Featured {
		t.Error("featured should default to false")
	}
	if p.DisplayOrder != 0 {
		t.Errorf("displayOrder should default to 0, got %d", p.DisplayOrder)
	}
	if p.Technologies == nil || p.Images == nil || p.Metrics == nil {
		t.Error("array fields should be empty slices, not nil")
	}
}

func TestProjectCreate_ToModel_ExplicitFlags(t *testing.T) {
	published := false
	featured := true
	p := ProjectCreate{
		Title:            "T",
		Slug:             "t",
		Category:         "Engineering",
		ShortDescription: "d",
		Published:        &published,
		Featured:         &featured,
	}.ToModel()

	if p.Published {
		t.Error("explicit published=false should be kept")
	}
	if !p.Featured {
		t.Error("explicit featured=true should be kept")
	}
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

func TestValidate_ExperienceCreate_Type(t *testing.T) {
	base := ExperienceCreate{Company: "C", Role: "R", Duration: "2024"}

	for _, typ := range []string{"full-time", "internship", "contract", "research", "volunteer"} {
		in := base
		in.Type = typ
		if errs := Validate(in); errs != nil {
			t.Errorf("type %q should be accepted, got %v", typ, errs)
		}
	}

	in := base
	in.Type = "freelance"
	errs := Validate(in)
	if !hasFieldError(errs, "type", "oneof") {
		t.Errorf("expected oneof error for type, got %v", errs)
	}
}

func TestValidate_ExperienceUpdate_TypeOptional(t *testing.T) {
	if errs := Validate(ExperienceUpdate{}); errs != nil {
		t.Errorf("empty partial update should be valid, got %v", errs)
	}

	bad := "freelance"
	errs := Validate(ExperienceUpdate{Type: &bad})
	if !hasFieldError(errs, "type", "oneof") {
		t.Errorf("expected oneof error for supplied bad type, got %v", errs)
	}
}

// ---------------------------------------------------------------------------
// Skill
// ---------------------------------------------------------------------------

func TestValidate_SkillCreate_ProficiencyBounds(t *testing.T) {
	over := 101
	errs := Validate(SkillCreate{Name: "Go", Category: "Engineering", Proficiency: &over})
	if !hasFieldError(errs, "proficiency", "max") {
		t.Errorf("expected max error for proficiency 101, got %v", errs)
	}

	under := -1
	errs = Validate(SkillCreate{Name: "Go", Category: "Engineering", Proficiency: &under})
	if !hasFieldError(errs, "proficiency", "min") {
		t.Errorf("expected min error for proficiency -1, got %v", errs)
	}

	zero := 0
	if errs := Validate(SkillCreate{Name: "Go", Category: "Engineering", Proficiency: &zero}); errs != nil {
		t.Errorf("proficiency 0 should be valid, got %v", errs)
	}
}

func TestSkillCreate_ToModel_DefaultProficiency(t *testing.T) {
	sk := SkillCreate{Name: "Go", Category: "Engineering"}.ToModel()
	if sk.Proficiency != 80 {
		t.Errorf("proficiency should default to 80, got %d", sk.Proficiency)
	}
}

// ---------------------------------------------------------------------------
// Contact
// ---------------------------------------------------------------------------

func TestValidate_ContactCreate(t *testing.T) {
	errs := Validate(ContactCreate{Name: "A", Email: "not-an-email", Message: "hi"})
	if !hasFieldError(errs, "email", "email") {
		t.Errorf("expected email format error, got %v", errs)
	}

	errs = Validate(ContactCreate{Email: "a@example.com"})
	if !hasFieldError(errs, "name", "required") || !hasFieldError(errs, "message", "required") {
		t.Errorf("expected required errors for name and message, got %v", errs)
	}

	if errs := Validate(ContactCreate{Name: "A", Email: "a@example.com", Message: "hi"}); errs != nil {
		t.Errorf("valid submission rejected: %v", errs)
	}
}
