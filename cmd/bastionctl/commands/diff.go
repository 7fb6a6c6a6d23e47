package commands

import (
	"context"
	"io/fs"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/attach"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/loader"
	"github.com/bastionctf/bastion/logger"
	"github.com/bastionctf/bastion/protocol"
)

// DiffCmd diffs a local content directory against the server
var DiffCmd = &cobra.Command{
	Use:   "diff [dir]",
	Short: "Diff a local content directory against the server",
	Long: `Load the content directory (loader.yaml plus every challenge.yaml
beneath it), send the resulting snapshot to the server, and print the
patch that would reconcile the server with it.

The patch is advisory: nothing is applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiff,
}

var diffWatchFlag bool

func init() {
	DiffCmd.Flags().BoolVarP(&diffWatchFlag, "watch", "w", false, "Re-diff whenever the directory changes")
}

// serverLookup resolves attachment hashes against the server's uploads.
type serverLookup struct {
	client *protocol.SyncClient
}

func (s serverLookup) AttachmentURLByHash(ctx context.Context, hash string) (string, bool, error) {
	reply, err := s.client.GetAttachmentByHash(ctx, &protocol.GetAttachmentByHashRequest{Hash: hash})
	if err != nil {
		return "", false, err
	}
	if reply.URL == nil {
		return "", false, nil
	}
	return *reply.URL, true, nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	ctx, client, cleanup, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	l := loader.New(attach.NewResolver(serverLookup{client: client}, logger.Logger), logger.Logger)

	diffOnce := func(ctx context.Context) error {
		data, err := l.Load(ctx, root)
		if err != nil {
			return err
		}
		reply, err := client.DiffChallenges(ctx, protocol.DataToWire(data))
		if err != nil {
			return err
		}
		patch, err := protocol.PatchFromWire(reply)
		if err != nil {
			return err
		}
		renderPatch(patch)
		return nil
	}

	if !diffWatchFlag {
		return diffOnce(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchAndDiff(ctx, root, diffOnce)
}

// watchAndDiff re-runs diffOnce whenever the tree under root changes.
// Load failures are reported but do not stop the watch; authors fix the
// file and save again.
func watchAndDiff(ctx context.Context, root string, diffOnce func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	if err := watchTree(watcher, root); err != nil {
		return err
	}

	if err := diffOnce(ctx); err != nil {
		pterm.Error.Println(err)
	}

	// Editors fire bursts of events per save; debounce them.
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// New subdirectories need their own watches.
				if err := watchTree(watcher, event.Name); err != nil {
					logger.Debugw("Failed to watch new path", "path", event.Name, "error", err)
				}
			}
			pending = time.After(250 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error", "error", err)
		case <-pending:
			pending = nil
			pterm.Println()
			if err := diffOnce(ctx); err != nil {
				pterm.Error.Println(err)
			}
		}
	}
}

func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Path may have vanished between the event and the walk.
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return errors.Wrapf(err, "failed to watch %s", path)
			}
		}
		return nil
	})
}
