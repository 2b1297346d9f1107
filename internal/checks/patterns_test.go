package checks

import (
	"strings"
	"testing"
)

// --- CS0006 test-class-suffix ---

func TestTestClassSuffixMissing(t *testing.T) {
	t.Parallel()
	src := `namespace Acme.Tests;

public class ParserChecks
{
}
`
	v := wantOne(t, runRule(t, "CS0006", "tests/ParserChecks.cs", src), "CS0006")
	if !strings.Contains(v.Message, "ParserChecks") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestTestClassSuffixPresent(t *testing.T) {
	t.Parallel()
	src := `namespace Acme.Tests;

public class ParserTests
{
}
`
	wantNone(t, runRule(t, "CS0006", "tests/ParserTests.cs", src))
}

func TestTestClassSuffixSkippedOutsideTestDir(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

public class Parser
{
}
`
	wantNone(t, runRule(t, "CS0006", "src/Parser.cs", src))
}

// --- CS0007 test-method-structure ---

const aaaTestShell = `namespace Acme.Tests;

public class ParserTests
{
    [Fact]
    public void ParsesEmptyInput()
    {
%s    }
}
`

func aaaBody(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("        " + l + "\n")
	}
	return strings.Replace(aaaTestShell, "%s", b.String(), 1)
}

func TestAAAOrderedCommentsOK(t *testing.T) {
	t.Parallel()
	src := aaaBody(
		"// Arrange",
		"var parser = new Parser();",
		"// Act",
		"var result = parser.Parse(\"\");",
		"// Assert",
		"Assert.True(result.IsEmpty);",
	)
	wantNone(t, runRule(t, "CS0007", "tests/ParserTests.cs", src))
}

func TestAAAMissingAct(t *testing.T) {
	t.Parallel()
	src := aaaBody(
		"// Arrange",
		"var parser = new Parser();",
		"var result = parser.Parse(\"\");",
	)
	v := wantOne(t, runRule(t, "CS0007", "tests/ParserTests.cs", src), "CS0007")
	if !strings.Contains(v.Message, "Act") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestAAAMissingArrange(t *testing.T) {
	t.Parallel()
	src := aaaBody(
		"// Act",
		"var result = new Parser().Parse(\"\");",
	)
	v := wantOne(t, runRule(t, "CS0007", "tests/ParserTests.cs", src), "CS0007")
	if !strings.Contains(v.Message, "Arrange") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestAAAAssertBeforeAct(t *testing.T) {
	t.Parallel()
	src := aaaBody(
		"// Arrange",
		"var parser = new Parser();",
		"// Assert",
		"Assert.NotNull(parser);",
		"// Act",
		"parser.Parse(\"\");",
	)
	v := wantOne(t, runRule(t, "CS0007", "tests/ParserTests.cs", src), "CS0007")
	if !strings.Contains(v.Message, "before Act") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestAAAActAndAssertCombined(t *testing.T) {
	t.Parallel()
	src := aaaBody(
		"// Arrange",
		"var parser = new Parser();",
		"// Act & Assert",
		"Assert.True(parser.Parse(\"\").IsEmpty);",
	)
	wantNone(t, runRule(t, "CS0007", "tests/ParserTests.cs", src))
}

func TestAAASkipsNonTestMethods(t *testing.T) {
	t.Parallel()
	src := `namespace Acme.Tests;

public class ParserTests
{
    private void Helper()
    {
        var x = 1;
    }
}
`
	wantNone(t, runRule(t, "CS0007", "tests/ParserTests.cs", src))
}

// --- CS0019 constructor dependencies ---

func TestCtorConcreteDependencyFlagged(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

internal sealed class Service
{
    public Service(Repository repo)
    {
    }
}
`
	v := wantOne(t, runRule(t, "CS0019", "src/Service.cs", src), "CS0019")
	if !strings.Contains(v.Message, "Repository") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestCtorInterfaceDependencyOK(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

internal sealed class Service
{
    public Service(IRepository repo, CancellationToken token, int limit)
    {
    }
}
`
	wantNone(t, runRule(t, "CS0019", "src/Service.cs", src))
}

func TestCtorGenericConcreteDependencyFlagged(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

internal sealed class Service
{
    public Service(Repository<string> repo)
    {
    }
}
`
	wantOne(t, runRule(t, "CS0019", "src/Service.cs", src), "CS0019")
}

// --- CS0020 readonly injected field ---

func TestInjectedFieldNotReadonlyFlagged(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

internal sealed class Service
{
    private IRepository _repo;
}
`
	v := wantOne(t, runRule(t, "CS0020", "src/Service.cs", src), "CS0020")
	if v.Fix != "readonly" {
		t.Errorf("fix = %q", v.Fix)
	}
}

func TestInjectedFieldReadonlyOK(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

internal sealed class Service
{
    private readonly IRepository _repo;
}
`
	wantNone(t, runRule(t, "CS0020", "src/Service.cs", src))
}

func TestNonInterfaceFieldIgnored(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

internal sealed class Service
{
    private int _count;
}
`
	wantNone(t, runRule(t, "CS0020", "src/Service.cs", src))
}
