package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/pullgate/codeowners-gate/pkg/codeowners"
)

type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatOneLine OutputFormat = "one-line"
	FormatJSON    OutputFormat = "json"
)

var allowedFormats = []string{string(FormatDefault), string(FormatOneLine), string(FormatJSON)}

func validateFormat(format string) (OutputFormat, error) {
	if !slices.Contains(allowedFormats, format) {
		return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
	}
	return OutputFormat(format), nil
}

func formatTargets(targets []string, rules codeowners.RuleSet, format OutputFormat) string {
	if format == FormatJSON {
		return jsonTargets(targets, rules)
	}
	return printTargets(targets, rules, format == FormatOneLine)
}

func jsonTargets(targets []string, rules codeowners.RuleSet) string {
	targetMap := make(map[string][]string, len(targets))
	for _, target := range targets {
		owners := codeowners.OriginalStrings(rules.Resolve(target))
		if owners == nil {
			owners = []string{}
		}
		targetMap[target] = owners
	}
	jsonString, _ := json.Marshal(targetMap)
	return string(jsonString)
}

func printTargets(targets []string, rules codeowners.RuleSet, oneLine bool) string {
	var b strings.Builder
	for i, target := range targets {
		if i > 0 {
			b.WriteString("\n")
		}
		owners := codeowners.OriginalStrings(rules.Resolve(target))
		line := "(unowned)"
		if len(owners) > 0 {
			if oneLine {
				line = strings.Join(owners, ", ")
			} else {
				line = strings.Join(owners, "\n")
			}
		}
		if len(targets) > 1 {
			if oneLine {
				b.WriteString(fmt.Sprintf("%s: %s", target, line))
			} else {
				b.WriteString(fmt.Sprintf("%s:\n%s", target, line))
			}
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}
