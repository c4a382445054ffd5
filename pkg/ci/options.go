package ci

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Annotator receives workflow commands from the pipeline
type Annotator interface {
	AddPath(dir string) error
	StartGroup(title string)
	EndGroup()
	Warning(msg string)
}

// Option defines some options of the pipeline
type Option func(*Pipeline)

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.l = l
		}
	}
}

// WithFs sets the file system the workspace is laid out on. The default is the OS file system.
func WithFs(fs afero.Fs) Option {
	return func(p *Pipeline) {
		if fs != nil {
			p.fs = fs
		}
	}
}

// WithAnnotator sets the receiver of workflow commands
func WithAnnotator(a Annotator) Option {
	return func(p *Pipeline) {
		if a != nil {
			p.annotator = a
		}
	}
}
