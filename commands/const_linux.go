package commands

const (
	_etc = "/usr/local/etc/data-access"
	_var = "/usr/local/var/data-access"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
