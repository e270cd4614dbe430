package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v2"

	"github.com/pullgate/codeowners-gate/internal/git"
	"github.com/pullgate/codeowners-gate/pkg/codeowners"
	f "github.com/pullgate/codeowners-gate/pkg/functional"
)

func stripRoot(root string, path string) string {
	if root == "." {
		return path
	}
	return strings.TrimPrefix(path, root+"/")
}

func main() {
	var repo string
	var requester string
	var targetBranch string

	app := &cli.App{
		Name:        "codeowners-gate",
		Usage:       "CLI tool for inspecting CODEOWNERS path ownership",
		Description: "",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Aliases:   []string{"c"},
				Usage:     "Check if a user owns all paths changed against a target branch",
				UsageText: "codeowners-gate check --user <handle> --target <branch> [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "root",
						Aliases:     []string{"r", "repo"},
						Value:       "./",
						Usage:       "Path to local Git repo",
						Destination: &repo,
					},
					&cli.StringFlag{
						Name:        "user",
						Aliases:     []string{"u"},
						Usage:       "GitHub handle of the requester",
						Required:    true,
						Destination: &requester,
					},
					&cli.StringFlag{
						Name:        "target",
						Aliases:     []string{"t"},
						Usage:       "Branch the change is being merged into",
						Required:    true,
						Destination: &targetBranch,
					},
				},
				Action: func(cCtx *cli.Context) error {
					return checkOwnership(repo, requester, targetBranch)
				},
			},
			{
				Name:      "owner",
				Aliases:   []string{"o"},
				Usage:     "Get owner of one or more files",
				UsageText: "codeowners-gate owner [options] <file1> [file2] [file3]...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "root",
						Aliases:     []string{"r", "repo"},
						Value:       "./",
						Usage:       "Path to local Git repo",
						Destination: &repo,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "default",
						Usage:   "Output format.  Allowed values are: default, one-line, and json",
					},
				},
				Action: func(cCtx *cli.Context) error {
					targets := cCtx.Args().Slice()
					if len(targets) == 0 {
						return fmt.Errorf("at least one target file is required")
					}
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					return fileOwner(repo, targets, format)
				},
			},
			{
				Name:      "unowned",
				Aliases:   []string{"u"},
				Usage:     "List unowned files in the repository",
				UsageText: "codeowners-gate unowned [options] [target-dir]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "root",
						Aliases:     []string{"r", "repo"},
						Value:       "./",
						Usage:       "Path to local Git repo",
						Destination: &repo,
					},
					&cli.IntFlag{
						Name:    "depth",
						Aliases: []string{"d"},
						Value:   0,
						Usage:   "Directory depth to check (from target)",
					},
					&cli.BoolFlag{
						Name:    "dirs_only",
						Aliases: []string{"do"},
						Value:   false,
						Usage:   "Only list directories",
					},
				},
				Action: func(cCtx *cli.Context) error {
					target := ""
					if cCtx.NArg() > 0 {
						target = cCtx.Args().First()
					}
					return unownedFiles(repo, target, cCtx.Int("depth"), cCtx.Bool("dirs_only"))
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// loadRules reads the rule file from the working tree, mirroring the
// discovery the action performs against the target ref.
func loadRules(root string) (codeowners.RuleSet, error) {
	candidates := []string{"CODEOWNERS", filepath.Join(".github", "CODEOWNERS")}
	found := ""
	for _, candidate := range candidates {
		if _, err := os.Stat(filepath.Join(root, candidate)); err == nil {
			if found != "" {
				return nil, fmt.Errorf("multiple CODEOWNERS files found: %s and %s", found, candidate)
			}
			found = candidate
		}
	}
	if found == "" {
		return nil, errors.New("no CODEOWNERS file found")
	}
	file, err := os.Open(filepath.Join(root, found))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return codeowners.ParseRules(file, os.Stderr), nil
}

func checkOwnership(repo string, requester string, targetBranch string) error {
	rules, err := loadRules(repo)
	if err != nil {
		return err
	}
	gitDiff, err := git.NewDiff(git.DiffContext{
		Base: targetBranch,
		Head: "HEAD",
		Dir:  repo,
	})
	if err != nil {
		return err
	}
	if !strings.HasPrefix(requester, "@") {
		requester = "@" + requester
	}

	// Unlike the action, report every path rather than short-circuiting.
	verdicts := codeowners.Verdicts(rules, gitDiff.ChangedPaths(), codeowners.NewSlug(requester))
	result := len(verdicts) > 0
	for _, verdict := range verdicts {
		var status string
		switch {
		case verdict.Matched:
			status = "owned"
		case len(verdict.Owners) == 0:
			status = "unowned"
			result = false
		default:
			status = "owned by " + strings.Join(codeowners.OriginalStrings(verdict.Owners), " ")
			result = false
		}
		fmt.Printf("%s: %s\n", verdict.Path, status)
	}
	if !result {
		return fmt.Errorf("%s does not own all changed paths", requester)
	}
	fmt.Printf("%s owns all changed paths\n", requester)
	return nil
}

func fileOwner(repo string, targets []string, format OutputFormat) error {
	rules, err := loadRules(repo)
	if err != nil {
		return err
	}
	fmt.Println(formatTargets(targets, rules, format))
	return nil
}

func depthCheck(path string, target string, depth int) bool {
	extra := 0
	if target != "" {
		extra = strings.Count(target, "/") + 1
	}
	return strings.Count(path, "/") > (depth + extra)
}

func unownedFiles(repo string, target string, depth int, dirsOnly bool) error {
	if repoStat, err := os.Lstat(repo); err != nil || !repoStat.IsDir() {
		return fmt.Errorf("root is not a directory: %s", repo)
	}
	if gitStat, err := os.Stat(filepath.Join(repo, ".git")); err != nil || !gitStat.IsDir() {
		return fmt.Errorf("root is not a Git repository: %s", repo)
	}

	rules, err := loadRules(repo)
	if err != nil {
		return err
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(repo, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	unowned := make([]string, 0)
	for file := range fileListQueue {
		path := stripRoot(repo, file.Location)
		if depth != 0 && depthCheck(path, target, depth) {
			continue
		}
		if target != "" && !strings.HasPrefix(path, target) {
			continue
		}
		if len(rules.Resolve(path)) == 0 {
			unowned = append(unowned, path)
		}
	}

	if err := <-errChan; err != nil {
		return fmt.Errorf("error walking repo: %s", err)
	}

	if dirsOnly {
		unowned = f.Filtered(f.RemoveDuplicates(f.Map(unowned, func(path string) string {
			return filepath.Dir(path)
		})), func(path string) bool {
			return path != "."
		})
	}
	slices.Sort(unowned)
	_, _ = io.WriteString(os.Stdout, strings.Join(unowned, "\n")+"\n")
	return nil
}
