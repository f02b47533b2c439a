package commands

const (
	_etc = `C:\ProgramData\sheets-bridge`
	_var = `C:\ProgramData\sheets-bridge\var`

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`

	BROWSER = "explorer"
)
