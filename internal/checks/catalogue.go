package checks

import (
	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// Catalogue returns every built-in rule in its stable registration
// order. The Summary/Success/Failure fields are documentation only; the
// executable logic lives in the Check functions in this package.
func Catalogue() []*rules.Definition {
	return []*rules.Definition{
		{
			ID:             "CS0001",
			Category:       rules.CategoryLicensing,
			Severity:       rules.SeverityError,
			Kinds:          []syntax.Kind{syntax.KindFile},
			DefaultEnabled: true,
			Summary:        "files open with the required header comment",
			Success:        "the first two comment lines match the configured header literals, in order, before any token",
			Failure:        "a header line is missing, reordered, or differs from the configured literal",
			Check:          checkHeader,
		},
		{
			ID:             "CS0002",
			Category:       rules.CategoryStyle,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindNamespace},
			DefaultEnabled: true,
			Summary:        "namespaces use the file-scoped form",
			Success:        "the namespace is a single declaration terminated by a semicolon",
			Failure:        "the namespace body is delimited by braces",
			Check:          checkNamespaceStyle,
		},
		{
			ID:             "CS0003",
			Category:       rules.CategoryNaming,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindField},
			DefaultEnabled: true,
			Summary:        "private fields are named _camelCase",
			Success:        "every private or internal non-static field matches _[a-z][A-Za-z0-9]*",
			Failure:        "a private field uses PascalCase or lacks the underscore prefix",
			Check:          checkFieldNaming,
		},
		{
			ID:             "CS0004",
			Category:       rules.CategoryNaming,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindInterface},
			DefaultEnabled: true,
			Summary:        "interfaces are prefixed with I",
			Success:        "the interface identifier starts with I followed by a capital",
			Failure:        "the interface identifier lacks the I prefix",
			Check:          checkInterfacePrefix,
		},
		{
			ID:             "CS0005",
			Category:       rules.CategoryNullability,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindMethod, syntax.KindConstructor},
			DefaultEnabled: true,
			Summary:        "null guards use a throw-if-null helper",
			Success:        "reference parameters are guarded with a throw-if-null helper call",
			Failure:        "the body opens with a manual if (param == null) throw guard",
			Check:          checkNullGuard,
		},
		{
			ID:             "CS0006",
			Category:       rules.CategoryNaming,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindClass},
			DefaultEnabled: true,
			Summary:        "test classes end with Test or Tests",
			Success:        "every class under a test directory ends with Test or Tests",
			Failure:        "a class under a test directory has a different suffix",
			Check:          checkTestClassSuffix,
		},
		{
			ID:             "CS0007",
			Category:       rules.CategoryDocumentation,
			Severity:       rules.SeverityInfo,
			Kinds:          []syntax.Kind{syntax.KindMethod},
			DefaultEnabled: true,
			Summary:        "test methods follow Arrange/Act/Assert",
			Success:        "body comments contain Arrange, then Act (or Act & Assert), then optionally Assert",
			Failure:        "a phase comment is missing or out of order",
			Check:          checkTestMethodAAA,
		},
		{
			ID:             "CS0008",
			Category:       rules.CategoryAsync,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindMethod},
			DefaultEnabled: true,
			Summary:        "task-returning methods are suffixed Async",
			Success:        "every method returning Task or ValueTask ends with Async",
			Failure:        "a task-returning method lacks the Async suffix",
			Check:          checkAsyncSuffix,
		},
		{
			ID:             "CS0009",
			Category:       rules.CategoryAsync,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindAwait},
			DefaultEnabled: true,
			Summary:        "awaits configure the awaiter without context capture",
			Success:        "the awaited chain includes ConfigureAwait(false), or the file is under a test or sample directory",
			Failure:        "an await outside test/sample code captures the context",
			Check:          checkConfigureAwait,
		},
		{
			ID:             "CS0010",
			Category:       rules.CategoryAsync,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindMethod},
			DefaultEnabled: true,
			Summary:        "async I/O methods accept a CancellationToken",
			Success:        "async methods performing I/O-shaped calls take a CancellationToken as their last parameter",
			Failure:        "an async method performing I/O-shaped calls has no trailing CancellationToken",
			Check:          checkCancellationToken,
		},
		{
			ID:             "CS0011",
			Category:       rules.CategoryStructure,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindClass},
			DefaultEnabled: true,
			Summary:        "internal leaf classes are sealed",
			Success:        "every internal class without subclasses anywhere in the compilation set is sealed",
			Failure:        "an internal class with no subclasses is left unsealed",
			Check:          checkSealedClass,
		},
		{
			ID:       "CS0012",
			Category: rules.CategoryStyle,
			Severity: rules.SeverityWarning,
			Kinds: []syntax.Kind{
				syntax.KindNamespace, syntax.KindClass, syntax.KindInterface,
				syntax.KindStruct, syntax.KindMethod, syntax.KindConstructor,
				syntax.KindStatement,
			},
			DefaultEnabled: true,
			Summary:        "braces follow the Allman style",
			Success:        "opening braces sit on their own line and single-statement bodies are braced",
			Failure:        "an opening brace shares a line with the preceding token, or a control body is unbraced",
			Check:          checkBraceStyle,
		},
		{
			ID:             "CS0013",
			Category:       rules.CategoryAsync,
			Severity:       rules.SeverityError,
			Kinds:          []syntax.Kind{syntax.KindMethod},
			DefaultEnabled: true,
			Summary:        "no async void methods",
			Success:        "async methods return Task or ValueTask",
			Failure:        "an async method returns void",
			Check:          checkAsyncVoid,
		},
		{
			ID:       "CS0014",
			Category: rules.CategoryDocumentation,
			Severity: rules.SeverityInfo,
			Kinds: []syntax.Kind{
				syntax.KindClass, syntax.KindInterface, syntax.KindStruct,
				syntax.KindMethod, syntax.KindProperty,
			},
			DefaultEnabled: true,
			Summary:        "public declarations carry XML doc comments",
			Success:        "every public type and member has a /// comment in its leading trivia",
			Failure:        "a public declaration has no doc comment",
			Check:          checkPublicMemberDocs,
		},
		{
			ID:             "CS0015",
			Category:       rules.CategoryStyle,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindFile},
			DefaultEnabled: true,
			Summary:        "using directives are placed and ordered correctly",
			Success:        "usings precede the namespace and System usings come first",
			Failure:        "a using follows the namespace, or a System using follows a non-System one",
			Check:          checkUsingPlacement,
		},
		{
			ID:             "CS0016",
			Category:       rules.CategoryStructure,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindFile},
			DefaultEnabled: true,
			Summary:        "one top-level type per file",
			Success:        "the file declares at most one top-level type",
			Failure:        "a second top-level type is declared in the same file",
			Check:          checkOneTypePerFile,
		},
		{
			ID:             "CS0017",
			Category:       rules.CategoryNaming,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindProperty},
			DefaultEnabled: true,
			Summary:        "properties are PascalCase",
			Success:        "every property identifier is PascalCase",
			Failure:        "a property identifier is camelCase or underscored",
			Check:          checkPropertyNaming,
		},
		{
			ID:             "CS0018",
			Category:       rules.CategoryNaming,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindField},
			DefaultEnabled: true,
			Summary:        "const fields are PascalCase",
			Success:        "every const field identifier is PascalCase",
			Failure:        "a const field identifier is not PascalCase",
			Check:          checkConstNaming,
		},
		{
			ID:             "CS0019",
			Category:       rules.CategoryDIPattern,
			Severity:       rules.SeverityInfo,
			Kinds:          []syntax.Kind{syntax.KindConstructor},
			DefaultEnabled: true,
			Summary:        "constructors depend on abstractions",
			Success:        "constructor parameters are interfaces or allowlisted framework types",
			Failure:        "a constructor parameter is typed as a concrete class",
			Check:          checkCtorDependencies,
		},
		{
			ID:             "CS0020",
			Category:       rules.CategoryDIPattern,
			Severity:       rules.SeverityWarning,
			Kinds:          []syntax.Kind{syntax.KindField},
			DefaultEnabled: true,
			Summary:        "injected dependency fields are readonly",
			Success:        "private interface-typed fields are declared readonly",
			Failure:        "a private interface-typed field can be reassigned",
			Check:          checkReadonlyInjectedField,
		},
	}
}

// Register installs the full catalogue into a registry.
func Register(reg *rules.Registry) error {
	for _, d := range Catalogue() {
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}
