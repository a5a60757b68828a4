package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 500 * time.Millisecond

// defaultSkipDirs are never watched; they churn constantly and hold no
// documentable source.
var defaultSkipDirs = []string{".git", "vendor", "node_modules", "testdata", "bin", "obj", "dist"}

// watchLoop regenerates the report whenever a Go file under root changes.
// Changes are debounced so editor save bursts produce one rebuild. Runs until
// interrupted.
func (app *cliApp) watchLoop(ctx context.Context, root string, opts options) error {
	if opts.outputPath == "" || opts.outputPath == "-" {
		return errors.New("--watch requires -o pointing to a file")
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	regenerate := func() error {
		report, err := app.generate(ctx, root, opts)
		if err != nil {
			return err
		}
		return writeOutput(opts.outputPath, app.stdout, report)
	}
	if err := regenerate(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	baseDir := resolveBaseDir(root)
	if baseDir == "" {
		baseDir = "."
	}
	if err := watchTree(watcher, baseDir, opts.exclude); err != nil {
		return err
	}
	app.logger.Infof("watching %s for Go file changes", baseDir)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !skipDir(filepath.Base(event.Name), opts.exclude) {
						_ = watchTree(watcher, event.Name, opts.exclude)
					}
					continue
				}
			}
			if filepath.Ext(event.Name) != ".go" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			app.logger.Debugf("change detected: %s", event.Name)
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.logger.Warnf("watch error: %v", err)
		case <-debounce.C:
			if err := regenerate(); err != nil {
				app.logger.Errorf("regenerate failed: %v", err)
				continue
			}
			app.logger.Infof("documentation rewritten to %s", opts.outputPath)
		}
	}
}

func watchTree(watcher *fsnotify.Watcher, root string, exclude []string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDir(d.Name(), exclude) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func skipDir(name string, exclude []string) bool {
	for _, skip := range defaultSkipDirs {
		if name == skip {
			return true
		}
	}
	for _, skip := range exclude {
		if name == skip {
			return true
		}
	}
	return false
}
