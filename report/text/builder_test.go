package text_test

import (
	"strings"

	"github.com/gookit/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/securego/lintreport"
	"github.com/securego/lintreport/report/text"
)

func plainConfig() lintreport.Config {
	cfg := lintreport.DefaultConfig()
	cfg.Color = false
	return cfg
}

var unusedVar = lintreport.Finding{
	Line:        1,
	Category:    lintreport.PossibleBug,
	Title:       "Unused var",
	Description: "x is never read",
}

var _ = Describe("ReportBuilder", func() {
	var builder *text.ReportBuilder

	BeforeEach(func() {
		builder = text.NewReportBuilder(plainConfig())
	})

	Context("when adding files", func() {
		It("should render a single finding with its source line", func() {
			report := builder.AddFile("a.js", "const x = 1;\n", unusedVar).BuildReport()

			Expect(report.TotalIssues).Should(Equal(1))
			out := report.String()
			Expect(out).To(ContainSubstring("File:   a.js"))
			Expect(out).To(ContainSubstring("Issues: 1"))
			Expect(out).To(ContainSubstring("Line 1: const x = 1;"))
			Expect(out).To(ContainSubstring("Possible Bug"))
			Expect(out).To(ContainSubstring("Unused var"))
			Expect(out).To(ContainSubstring("x is never read"))
		})

		It("should lay out the columns with fixed widths", func() {
			out := builder.AddFile("a.js", "const x = 1;\n", unusedVar).BuildReport().String()

			Expect(strings.Split(out, "\n")).Should(Equal([]string{
				"",
				"File:   a.js",
				"Issues: 1",
				"",
				"Line 1: const x = 1;",
				"Issue  Category      Title                 Description",
				"    1  Possible Bug  Unused var            x is never read",
				"",
			}))
		})

		It("should count an identical finding on the same line once", func() {
			report := builder.
				AddFile("a.js", "const x = 1;", unusedVar).
				AddFile("a.js", "", unusedVar, unusedVar).
				BuildReport()

			Expect(report.TotalIssues).Should(Equal(1))
			Expect(report.Files).Should(HaveLen(1))
			Expect(report.Files[0].Findings).Should(HaveLen(1))
		})

		It("should count the same finding on different lines", func() {
			other := unusedVar
			other.Line = 2
			report := builder.AddFile("a.js", "a\nb", unusedVar, other).BuildReport()

			Expect(report.TotalIssues).Should(Equal(2))
		})

		It("should count the same finding in different files", func() {
			report := builder.
				AddFile("a.js", "", unusedVar).
				AddFile("b.js", "", unusedVar).
				BuildReport()

			Expect(report.TotalIssues).Should(Equal(2))
		})

		It("should keep findings that differ in any field", func() {
			other := unusedVar
			other.Description = "x is shadowed"
			report := builder.AddFile("a.js", "", unusedVar, other).BuildReport()

			Expect(report.TotalIssues).Should(Equal(2))
		})

		It("should ignore an empty path", func() {
			report := builder.AddFile("", "const x = 1;", unusedVar).BuildReport()

			Expect(report.TotalIssues).Should(BeZero())
			Expect(report.Files).Should(BeEmpty())
			Expect(report.String()).ShouldNot(ContainSubstring("File:"))
		})

		It("should capture the source text only the first time a path is seen", func() {
			out := builder.
				AddFile("a.js", "first\r\n").
				AddFile("a.js", "second\n", unusedVar).
				BuildReport().String()

			Expect(out).To(ContainSubstring("Line 1: first"))
			Expect(out).ShouldNot(ContainSubstring("second"))
			Expect(out).ShouldNot(ContainSubstring("\r"))
		})
	})

	Context("when building reports", func() {
		It("should report files without findings", func() {
			report := builder.AddFile("clean.js", "let a;").BuildReport()

			Expect(report.TotalIssues).Should(BeZero())
			Expect(report.String()).To(ContainSubstring("Issues: None found"))
		})

		It("should render lines in the order they were first reported", func() {
			late := unusedVar
			late.Line = 3
			report := builder.AddFile("a.js", "one\ntwo\nthree", late, unusedVar).BuildReport()

			out := report.String()
			Expect(strings.Index(out, "Line 3: three")).Should(BeNumerically("<", strings.Index(out, "Line 1: one")))
		})

		It("should number issues across the lines of a file", func() {
			second := unusedVar
			second.Line = 2
			third := unusedVar
			third.Title = "Shadowed var"
			out := builder.
				AddFile("a.js", "a\nb", unusedVar, second, third).
				AddFile("b.js", "c", unusedVar).
				BuildReport().String()

			Expect(out).To(MatchRegexp(`(?m)^    1  Possible Bug  Unused var`))
			Expect(out).To(MatchRegexp(`(?m)^    2  Possible Bug  Shadowed var`))
			Expect(out).To(MatchRegexp(`(?m)^    3  Possible Bug  Unused var`))
			Expect(strings.Count(out, "    1  Possible Bug")).Should(Equal(2))
		})

		It("should render an empty source line for out of range line numbers", func() {
			far := unusedVar
			far.Line = 42
			out := builder.AddFile("a.js", "one", far).BuildReport().String()

			Expect(out).To(MatchRegexp(`(?m)^Line 42:$`))
		})

		It("should render findings with missing fields", func() {
			report := builder.AddFile("a.js", "", lintreport.Finding{Line: 1}).BuildReport()

			Expect(report.TotalIssues).Should(Equal(1))
			Expect(report.String()).To(MatchRegexp(`(?m)^    1$`))
		})

		It("should be repeatable", func() {
			builder.AddFile("a.js", "const x = 1;", unusedVar)
			first := builder.BuildReport()
			second := builder.BuildReport()

			Expect(second.TotalIssues).Should(Equal(first.TotalIssues))
			Expect(second.String()).Should(Equal(first.String()))
			Expect(second.ID).ShouldNot(Equal(first.ID))
		})

		It("should not change a report already built", func() {
			builder.AddFile("a.js", "const x = 1;", unusedVar)
			first := builder.BuildReport()
			rendered := first.String()

			other := unusedVar
			other.Line = 2
			builder.AddFile("a.js", "", other).AddFile("b.js", "", unusedVar)
			second := builder.BuildReport()

			Expect(first.TotalIssues).Should(Equal(1))
			Expect(first.Files).Should(HaveLen(1))
			Expect(first.Files[0].Findings).Should(HaveLen(1))
			Expect(first.String()).Should(Equal(rendered))
			Expect(second.TotalIssues).Should(Equal(3))
		})

		It("should not count files without findings in the total", func() {
			report := builder.
				AddFile("clean.js", "").
				AddFile("a.js", "", unusedVar).
				BuildReport()

			Expect(report.TotalIssues).Should(Equal(1))
			Expect(report.Files).Should(HaveLen(2))
		})

		It("should render unknown categories", func() {
			security := unusedVar
			security.Category = "Security"
			report := builder.AddFile("a.js", "", security).BuildReport()

			Expect(report.TotalIssues).Should(Equal(1))
			Expect(report.String()).To(ContainSubstring("Security"))
		})

		It("should wrap long descriptions in the last column", func() {
			long := unusedVar
			long.Description = strings.Repeat("word ", 30)
			out := builder.AddFile("a.js", "", long).BuildReport().String()

			for _, line := range strings.Split(out, "\n") {
				Expect(len(line)).Should(BeNumerically("<=", lintreport.DefaultWidth))
			}
			Expect(out).To(MatchRegexp(`(?m)^ {43}word`))
		})

		It("should not wrap when wrapping is disabled", func() {
			cfg := plainConfig()
			cfg.Wrap = false
			long := unusedVar
			long.Description = strings.Repeat("word ", 30)
			out := text.NewReportBuilder(cfg).AddFile("a.js", "", long).BuildReport().String()

			Expect(out).To(ContainSubstring(strings.TrimSpace(long.Description)))
		})

		It("should fall back to the default width", func() {
			cfg := plainConfig()
			cfg.Width = -3
			out := text.NewReportBuilder(cfg).AddFile("a.js", "const x = 1;\n", unusedVar).BuildReport().String()

			Expect(out).To(ContainSubstring("Issue  Category      Title                 Description"))
		})

		It("should end with a blank separator line", func() {
			out := builder.AddFile("a.js", "").BuildReport().String()
			Expect(out).Should(HaveSuffix("\n"))

			Expect(text.NewReportBuilder(plainConfig()).BuildReport().String()).Should(Equal(""))
		})
	})

	Context("when colors are enabled", func() {
		var finding lintreport.Finding

		BeforeEach(func() {
			color.Enable = true
			level := color.ForceColor()
			DeferCleanup(func() {
				color.ForceSetColorLevel(level)
			})
			finding = lintreport.Finding{
				Line:        1,
				Category:    lintreport.PossibleBug,
				Title:       "Unused local var",
				Description: "x is never read",
			}
		})

		render := func(cfg lintreport.Config, f lintreport.Finding) string {
			return text.NewReportBuilder(cfg).
				AddFile("a.js", "const x = 1;", f).
				AddFile("clean.js", "").
				BuildReport().String()
		}

		It("should style the output", func() {
			out := render(lintreport.DefaultConfig(), finding)
			Expect(out).To(ContainSubstring("\x1b["))
		})

		It("should lay out exactly like the plain report", func() {
			colored := render(lintreport.DefaultConfig(), finding)
			Expect(color.ClearCode(colored)).Should(Equal(render(plainConfig(), finding)))
		})

		It("should lay out wrapped cells exactly like the plain report", func() {
			finding.Title = "A rather long title that needs wrapping"
			finding.Description = strings.Repeat("styled words ", 15)
			colored := render(lintreport.DefaultConfig(), finding)
			Expect(color.ClearCode(colored)).Should(Equal(render(plainConfig(), finding)))
		})

		It("should close every style on the line it was opened", func() {
			finding.Description = strings.Repeat("styled words ", 15)
			for _, line := range strings.Split(render(lintreport.DefaultConfig(), finding), "\n") {
				if strings.Contains(line, "styled") {
					Expect(line).Should(HaveSuffix("\x1b[0m"))
				}
			}
		})
	})
})
