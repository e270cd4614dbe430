package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pullgate/codeowners-gate/internal/config"
	"github.com/pullgate/codeowners-gate/internal/git"
	gh "github.com/pullgate/codeowners-gate/internal/github"
	"github.com/pullgate/codeowners-gate/pkg/codeowners"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func ignoreError[V any, E error](res V, _ E) V {
	return res
}

var (
	WarningBuffer = bytes.NewBuffer([]byte{})
	InfoBuffer    = bytes.NewBuffer([]byte{})
)

var (
	user     = flag.String("user", getEnv("INPUT_USER", getEnv("GITHUB_ACTOR", "")), "GitHub handle of the requester")
	target   = flag.String("target", getEnv("INPUT_TARGET-BRANCH", getEnv("GITHUB_BASE_REF", "")), "Branch the change is being merged into")
	repo_dir = flag.String("dir", getEnv("GITHUB_WORKSPACE", "/github/workspace"), "Path to local Git repo")
	pr       = flag.Int("pr", ignoreError(strconv.Atoi(getEnv("INPUT_PR", ""))), "Pull Request number (used to resolve the requester when -user is not set)")
	gh_repo  = flag.String("repo", getEnv("INPUT_REPOSITORY", getEnv("GITHUB_REPOSITORY", "")), "GitHub repo name (owner/repo)")
	gh_token = flag.String("token", getEnv("INPUT_GITHUB-TOKEN", ""), "GitHub authentication token")
	verbose  = flag.Bool("v", ignoreError(strconv.ParseBool(getEnv("INPUT_VERBOSE", "0"))), "Verbose output")
)

// shouldFail should always be true for errors that are not recoverable
func errorAndExit(shouldFail bool, format string, args ...interface{}) {
	flushBuffers(os.Stderr)
	fmt.Fprintf(os.Stderr, format, args...)
	if shouldFail {
		os.Exit(1)
	} else {
		os.Exit(0)
	}
}

func flushBuffers(out *os.File) {
	if _, err := WarningBuffer.WriteTo(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing warning buffer: %v\n", err)
	}
	if *verbose {
		if _, err := InfoBuffer.WriteTo(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing info buffer: %v\n", err)
		}
	}
}

func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(WarningBuffer, format, args...)
}

func printDebug(format string, args ...interface{}) {
	if *verbose {
		fmt.Fprintf(InfoBuffer, format, args...)
	}
}

// formatResult renders a decision the way the action output expects it.
func formatResult(result bool) string {
	if result {
		return "True"
	}
	return "False"
}

// writeActionOutput appends the decision to the GITHUB_OUTPUT file when the
// workflow provides one.
func writeActionOutput(result bool) error {
	outputPath := os.Getenv("GITHUB_OUTPUT")
	if outputPath == "" {
		return nil
	}
	file, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "result=%s\n", formatResult(result))
	return err
}

func main() {
	flag.Parse()
	if *target == "" {
		errorAndExit(true, "Required flag or environment variable not set: target\n")
	}
	if *user == "" && (*pr == 0 || *gh_repo == "" || *gh_token == "") {
		errorAndExit(true, "Either -user or all of -pr, -repo and -token must be set\n")
	}

	conf, err := config.Read(*repo_dir)
	if err != nil {
		printWarning("WARNING: Error reading codeowners-gate.toml - using default config\n")
	}

	requester := *user
	if requester == "" {
		repoSplit := strings.Split(*gh_repo, "/")
		if len(repoSplit) != 2 {
			errorAndExit(true, "Invalid repo name: %s\n", *gh_repo)
		}
		client := gh.NewClient(repoSplit[0], repoSplit[1], *gh_token)
		requester, err = client.PRAuthor(*pr)
		if err != nil {
			errorAndExit(true, "PRAuthor Error: %v\n", err)
		}
	}
	if !strings.HasPrefix(requester, "@") {
		requester = "@" + requester
	}
	printDebug("Requester: %s\n", requester)

	// The rule file is read from the target ref, never the working tree.
	reader := git.NewRefFileReader(*target, *repo_dir)
	location := conf.CodeownersFile
	if location == "" {
		location, err = reader.FindOwnersFile()
		if err != nil {
			errorAndExit(true, "CODEOWNERS Error: %v\n", err)
		}
	}
	printDebug("Rule file: %s\n", location)

	content, err := reader.ReadFile(location)
	if err != nil {
		errorAndExit(true, "ReadFile Error: %v\n", err)
	}
	rules := codeowners.ParseRules(bytes.NewReader(content), WarningBuffer)
	printDebug("Parsed %d ownership rules\n", len(rules))

	diffContext := git.DiffContext{
		Base:       *target,
		Head:       "HEAD",
		Dir:        *repo_dir,
		IgnoreDirs: conf.Ignore,
	}
	printDebug("Getting diff for %s...%s\n", diffContext.Base, diffContext.Head)
	gitDiff, err := git.NewDiff(diffContext)
	if err != nil {
		errorAndExit(true, "NewDiff Error: %v\n", err)
	}
	changedPaths := gitDiff.ChangedPaths()
	printDebug("Checking ownership of %d changed paths\n", len(changedPaths))

	result := codeowners.Decide(rules, changedPaths, codeowners.NewSlug(requester), InfoBuffer)

	if err := writeActionOutput(result); err != nil {
		printWarning("WARNING: Error writing action output: %v\n", err)
	}

	if !result {
		fmt.Println("False")
		errorAndExit(conf.Enforcement.FailCheck, "FAIL: %s does not own all changed paths\n", requester)
	}

	flushBuffers(os.Stdout)
	fmt.Println("True")
}
