package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"golang.org/x/sync/errgroup"

	"github.com/furcode/macfetch/internal/model"
	"github.com/furcode/macfetch/internal/platform"
)

// Progress bar rendering
const (
	barWidth       = 60
	barRefreshRate = 180 * time.Millisecond
)

// Service handles download operations
type Service struct {
	httpClient  *http.Client
	userAgent   string
	tasks       map[string]*model.DownloadTask
	tasksMutex  sync.RWMutex
	maxParallel int
	progress    bool
}

// NewService creates a new download service. userAgent is attached to every
// package request; progress controls terminal progress bars. maxParallel
// below 2 gives the sequential queue.
func NewService(httpClient *http.Client, userAgent string, maxParallel int, progress bool) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		httpClient:  httpClient,
		userAgent:   userAgent,
		tasks:       make(map[string]*model.DownloadTask),
		maxParallel: maxParallel,
		progress:    progress,
	}
}

// Download streams a single package into destDir and returns the local path.
func (s *Service) Download(ctx context.Context, pkg model.Package, destDir string) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(destDir); err != nil {
		return "", errors.Wrap(err, "create output directory")
	}

	p := s.newProgress()
	path, err := s.download(ctx, p, pkg, destDir)
	if p != nil {
		p.Wait()
	}
	return path, err
}

// FetchAll downloads the given packages into destDir in order and returns
// the local paths. The first failure aborts the remaining queue; with
// maxParallel above 1 the queue runs through a bounded worker group and a
// failure cancels the in-flight remainder.
func (s *Service) FetchAll(ctx context.Context, pkgs []model.Package, destDir string) ([]string, error) {
	if len(pkgs) == 0 {
		return nil, nil
	}
	if err := platform.CreateDirectoryIfNotExists(destDir); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	p := s.newProgress()
	paths := make([]string, len(pkgs))

	var err error
	if s.maxParallel <= 1 {
		for i, pkg := range pkgs {
			var path string
			path, err = s.download(ctx, p, pkg, destDir)
			if err != nil {
				break
			}
			paths[i] = path
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.maxParallel)
		for i, pkg := range pkgs {
			i, pkg := i, pkg
			g.Go(func() error {
				path, derr := s.download(gctx, p, pkg, destDir)
				if derr != nil {
					return derr
				}
				paths[i] = path
				return nil
			})
		}
		err = g.Wait()
	}

	if p != nil {
		p.Wait()
	}
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Tasks returns a snapshot of all tasks seen by the service.
func (s *Service) Tasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

func (s *Service) newProgress() *mpb.Progress {
	if !s.progress {
		return nil
	}
	return mpb.New(
		mpb.WithWidth(barWidth),
		mpb.WithRefreshRate(barRefreshRate),
	)
}

// download performs one streaming fetch. Expected size drives the progress
// bar; when absent the response Content-Length stands in, and without either
// the copy runs without a bar.
func (s *Service) download(ctx context.Context, p *mpb.Progress, pkg model.Package, destDir string) (string, error) {
	task := s.newTask(pkg)
	filename := platform.FilenameFromURL(pkg.URL)
	outPath := filepath.Join(destDir, filename)

	log.WithFields(log.Fields{
		"url":  pkg.URL,
		"size": humanize.Bytes(uint64(pkg.Size)),
	}).Infof("fetching %s", filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pkg.URL, nil)
	if err != nil {
		return "", s.fail(task, errors.Wrap(err, "build download request"))
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", s.fail(task, errors.Wrapf(err, "download %s", filename))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", s.fail(task, errors.Errorf("download %s: unexpected status %s", filename, resp.Status))
	}

	total := pkg.Size
	if total <= 0 {
		total = resp.ContentLength
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", s.fail(task, errors.Wrapf(err, "create %s", outPath))
	}
	defer out.Close()

	s.setStatus(task, model.TaskStatusDownloading)

	var reader io.Reader = resp.Body
	var bar *mpb.Bar
	if p != nil && total > 0 {
		bar = p.New(total,
			mpb.BarStyle(),
			mpb.PrependDecorators(
				decor.Name(filename+" "),
				decor.CountersKibiByte("% .2f / % .2f"),
			),
			mpb.AppendDecorators(
				decor.EwmaETA(decor.ET_STYLE_GO, 30),
				decor.Name(" ] "),
				decor.EwmaSpeed(decor.UnitKiB, "% .2f", 30),
			),
		)
		proxy := bar.ProxyReader(resp.Body)
		defer proxy.Close()
		reader = proxy
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		if bar != nil {
			bar.Abort(true)
		}
		return "", s.fail(task, errors.Wrapf(err, "write %s", outPath))
	}
	if bar != nil {
		bar.SetTotal(-1, true)
	}

	s.complete(task, outPath, written)
	log.WithField("path", outPath).Debugf("fetched %s (%s)", filename, humanize.Bytes(uint64(written)))
	return outPath, nil
}

func (s *Service) newTask(pkg model.Package) *model.DownloadTask {
	task := &model.DownloadTask{
		ID:        uuid.NewString(),
		URL:       pkg.URL,
		Status:    model.TaskStatusPending,
		Size:      pkg.Size,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	return task
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
}

func (s *Service) fail(task *model.DownloadTask, err error) error {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	return err
}

func (s *Service) complete(task *model.DownloadTask, outPath string, written int64) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Written = written
	task.OutputPath = outPath
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
}
