package commands

const (
	_etc = "/usr/local/etc/sheets-bridge"
	_var = "/usr/local/var/sheets-bridge"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"

	BROWSER = "xdg-open"
)
