package typeforge_test

import (
	"fmt"
	"testing"

	typeforge "github.com/typeforge/typeforge"
)

func TestIssuesError_Summary(t *testing.T) {
	iss := typeforge.Issues{
		{Path: "/a", Code: typeforge.CodeRequired},
		{Path: "/b", Code: typeforge.CodeInvalidType},
	}
	got := iss.Error()
	want := "required at /a; invalid_type at /b"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestIssuesError_Truncation(t *testing.T) {
	var iss typeforge.Issues
	for i := 0; i < 5; i++ {
		iss = typeforge.AppendIssues(iss, typeforge.Issue{Path: fmt.Sprintf("/f%d", i), Code: typeforge.CodeRequired})
	}
	got := iss.Error()
	want := "required at /f0; required at /f1; required at /f2; ... (total 5)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	inner := typeforge.Issues{{Path: "/", Code: typeforge.CodeUnresolvedRef}}
	wrapped := fmt.Errorf("compile failed: %w", inner)
	iss, ok := typeforge.AsIssues(wrapped)
	if !ok || iss[0].Code != typeforge.CodeUnresolvedRef {
		t.Fatalf("AsIssues through wrapping failed: %v %v", iss, ok)
	}
	if !typeforge.HasCode(wrapped, typeforge.CodeUnresolvedRef) {
		t.Fatalf("HasCode through wrapping failed")
	}
	if typeforge.HasCode(nil, typeforge.CodeUnresolvedRef) {
		t.Fatalf("HasCode(nil) must be false")
	}
}
