package ignore

var builtInPatternTexts = []string{
	// version control metadata
	".git/*",
	".svn/*",
	".hg/*",
	".bzr/*",
	".gitignore",
	".gitattributes",
	".gitmodules",

	// infrastructure-as-code caches
	".terragrunt-cache/*",
	".serverless/*",

	// images, documents, archives, compiled objects, fonts and media
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.bmp",
	"*.ico",
	"*.webp",
	"*.tif",
	"*.tiff",
	"*.pdf",
	"*.zip",
	"*.tar",
	"*.gz",
	"*.tgz",
	"*.bz2",
	"*.xz",
	"*.7z",
	"*.rar",
	"*.jar",
	"*.war",
	"*.exe",
	"*.dll",
	"*.so",
	"*.dylib",
	"*.a",
	"*.o",
	"*.bin",
	"*.woff",
	"*.woff2",
	"*.ttf",
	"*.otf",
	"*.eot",
	"*.mp3",
	"*.mp4",
	"*.mov",
	"*.wav",

	// operating system metadata
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",

	// bytecode caches
	"__pycache__/*",
	"*.pyc",
	"*.pyo",
	"*.class",

	// lockfiles
	"*.lock",
	"package-lock.json",
	"pnpm-lock.yaml",
	"go.sum",
	".terraform.lock.hcl",

	// build output
	"dist/*",
	"build/*",
	"out/*",
	"target/*",
	".next/*",

	// virtual environments and vendored packages
	"venv/*",
	".venv/*",
	"node_modules/*",

	// tool caches
	".pytest_cache/*",
	".mypy_cache/*",
	".ruff_cache/*",
	".tox/*",
	".gradle/*",
	".cache/*",
}

// BuiltInPatterns returns a fresh copy of the patterns that are always active.
func BuiltInPatterns() []Pattern {
	return Patterns(OriginBuiltIn, builtInPatternTexts)
}
