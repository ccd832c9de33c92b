package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/cschone/bikefit/pkg/validation"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHeading = lipgloss.NewStyle().Bold(true)
)

const (
	iconSolved  = "✓"
	iconSkipped = "✗"
)

// printRunSummary lists which bicycles solved and which were skipped,
// with the reason, after every input has been attempted.
func printRunSummary(bikes []solved, skips []skipped) {
	if len(bikes) == 0 && len(skips) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(styleHeading.Render(fmt.Sprintf("Processed %d file(s): %d solved, %d skipped",
		len(bikes)+len(skips), len(bikes), len(skips))))

	for _, b := range bikes {
		fmt.Printf("  %s %s %s\n",
			styleSuccess.Render(iconSolved),
			b.set.Label,
			styleDim.Render("("+b.path+")"))
	}
	for _, s := range skips {
		fmt.Printf("  %s %s\n    %s\n",
			styleError.Render(iconSkipped),
			s.path,
			styleDim.Render(s.reason.Error()))
	}
}

// printBikeInfo prints the supplied dimensions and the derived metrics
// for one bicycle.
func printBikeInfo(b solved) {
	fmt.Println(styleHeading.Render(b.set.Label))

	fmt.Println("  Dimensions:")
	for _, d := range b.bike.Dimensions() {
		if d.Value == nil {
			continue
		}
		fmt.Printf("    %-18s %9.1f\n", d.Name, *d.Value)
	}

	names := b.mset.Names()
	if len(names) > 0 {
		fmt.Println("  Derived:")
		for _, name := range names {
			v, _ := b.mset.Get(name)
			fmt.Printf("    %-18s %9.1f\n", name, v)
		}
	}
	fmt.Println()
}

func printFileError(path string, err error) {
	fmt.Printf("%s\n", styleHeading.Render(path))
	fmt.Printf("  %s %s\n\n", styleError.Render(iconSkipped), err)
}

// printValidationReport prints one file's validation findings.
func printValidationReport(path string, r *validation.Report) {
	fmt.Println(styleHeading.Render(path))

	if len(r.Errors) > 0 {
		fmt.Printf("  ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("    [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("      -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("      expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("      * %s\n", s)
			}
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("  WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("    [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("      -> %s = %v\n", w.Field, w.ActualValue)
			}
		}
	}

	if r.Valid {
		fmt.Printf("  Result: %s (%s)\n\n", styleSuccess.Render("VALID"), r.Summary)
	} else {
		fmt.Printf("  Result: %s (%s)\n\n", styleError.Render("INVALID"), r.Summary)
	}
}
