// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package interactive_test

import (
	"context"
	"io"

	"github.com/luxfi/interactive/pkg/interactive"
	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/prompts/mocks"
	"github.com/luxfi/interactive/pkg/resolve"
	"github.com/luxfi/interactive/pkg/session"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
)

func builder(renderer session.Renderer, args ...string) *interactive.Builder {
	return interactive.New().
		Args(args...).
		Program("prog").
		Usage("$0 <command> [args]").
		Version("1.0.0").
		Help().
		WithOutput(io.Discard).
		WithRenderer(renderer)
}

func resolveWith(b *interactive.Builder, spec *options.Spec) resolve.Config {
	pending, err := b.Interactive(context.Background(), spec)
	gomega.Expect(err).Should(gomega.BeNil())
	cfg, err := pending.Wait()
	gomega.Expect(err).Should(gomega.BeNil())
	return cfg
}

func expectReservedKeys(cfg resolve.Config, interactiveMode bool) {
	_, ok := cfg.Lookup(options.KeyPositional)
	gomega.Expect(ok).Should(gomega.BeTrue(), "_")
	gomega.Expect(cfg.Program()).ShouldNot(gomega.BeEmpty(), "$0")
	gomega.Expect(cfg.Version()).Should(gomega.BeFalse(), "version")
	gomega.Expect(cfg.Help()).Should(gomega.BeFalse(), "help")
	gomega.Expect(cfg.Interactive()).Should(gomega.Equal(interactiveMode), "interactive")
}

func anyQuestion(name string) any {
	return mock.MatchedBy(func(q session.Question) bool { return q.Name == name })
}

var _ = ginkgo.Describe("[Builder]", func() {
	var renderer *mocks.Renderer

	ginkgo.BeforeEach(func() {
		renderer = &mocks.Renderer{}
	})

	ginkgo.AfterEach(func() {
		renderer.AssertExpectations(ginkgo.GinkgoT())
	})

	ginkgo.Context("without interactive", func() {
		ginkgo.It("does not set the interactive argument", func() {
			cfg, err := builder(renderer).Argv()
			gomega.Expect(err).Should(gomega.BeNil())
			_, ok := cfg.Lookup(options.KeyInteractive)
			gomega.Expect(ok).Should(gomega.BeFalse())
			renderer.AssertNotCalled(ginkgo.GinkgoT(), "Ask", mock.Anything, mock.Anything)
		})
	})

	ginkgo.Context("with no options", func() {
		ginkgo.It("returns the parser defaults", func() {
			cfg := resolveWith(builder(renderer), nil)
			expectReservedKeys(cfg, false)
			gomega.Expect(cfg.Keys()).Should(gomega.Equal([]string{"_", "$0", "help", "version", "interactive"}))
		})
	})

	ginkgo.Context("with options", func() {
		var spec *options.Spec

		ginkgo.BeforeEach(func() {
			spec = options.NewSpec().
				Set("directory", options.Option{Type: options.TypeInput, Describe: "Target directory"}.WithDefault(".")).
				Set("projectName", options.Option{Type: options.TypeInput, Describe: "Project name", Prompt: "if-empty"}.WithDefault("custom"))
		})

		ginkgo.It("returns default values without parameters", func() {
			cfg := resolveWith(builder(renderer), spec)
			expectReservedKeys(cfg, false)
			gomega.Expect(cfg.Get("directory")).Should(gomega.Equal("."))
			gomega.Expect(cfg.Get("projectName")).Should(gomega.Equal("custom"))
		})

		ginkgo.It("returns values sent by parameter", func() {
			cfg := resolveWith(builder(renderer, "--directory=abc", "--projectName=def"), spec)
			expectReservedKeys(cfg, false)
			gomega.Expect(cfg.Get("directory")).Should(gomega.Equal("abc"))
			gomega.Expect(cfg.Get("projectName")).Should(gomega.Equal("def"))
		})

		ginkgo.It("prompts for every option with --interactive", func() {
			renderer.On("Ask", mock.Anything, anyQuestion("directory")).Return("src", nil).Once()
			renderer.On("Ask", mock.Anything, anyQuestion("projectName")).Return("demo", nil).Once()

			cfg := resolveWith(builder(renderer, "--interactive"), spec)
			expectReservedKeys(cfg, true)
			gomega.Expect(cfg.Get("directory")).Should(gomega.Equal("src"))
			gomega.Expect(cfg.Get("projectName")).Should(gomega.Equal("demo"))
		})

		ginkgo.It("prompts when the spec turns interactive on", func() {
			spec.Set(options.KeyInteractive, options.Option{}.WithDefault(true))
			renderer.On("Ask", mock.Anything, anyQuestion("directory")).Return("src", nil).Once()
			renderer.On("Ask", mock.Anything, anyQuestion("projectName")).Return("demo", nil).Once()

			cfg := resolveWith(builder(renderer), spec)
			expectReservedKeys(cfg, true)
		})

		ginkgo.It("skips an if-empty prompt when the argument is set", func() {
			renderer.On("Ask", mock.Anything, anyQuestion("directory")).Return("src", nil).Once()

			cfg := resolveWith(builder(renderer, "-i", "--projectName=def"), spec)
			gomega.Expect(cfg.Get("projectName")).Should(gomega.Equal("def"))
			renderer.AssertNotCalled(ginkgo.GinkgoT(), "Ask", mock.Anything, anyQuestion("projectName"))
		})

		ginkgo.It("rejects the outcome when a prompt is aborted", func() {
			renderer.On("Ask", mock.Anything, anyQuestion("directory")).Return(nil, session.ErrAborted).Once()

			pending, err := builder(renderer, "-i").Interactive(context.Background(), spec)
			gomega.Expect(err).Should(gomega.BeNil())
			_, err = pending.Wait()
			gomega.Expect(err).Should(gomega.MatchError(session.ErrAborted))
			renderer.AssertNumberOfCalls(ginkgo.GinkgoT(), "Ask", 1)
		})
	})
})
