package cmd

const DESCRIPTION = `
HistDL keeps track of every file you download: what it was,
where it came from and how it ended. It can search, page and
export that history, and pull in the download history your
browser already has.
`

const (
	ListDescription = `The list command displays the visible page of your download
history, newest first. Use --pages to reveal more pages,
--all to reveal everything, or --search to filter the
visible records by url or status.

Example:
        histdl list
        histdl list --search ubuntu --all

`
	AddDescription = `The add command appends a record to the download history.
The status defaults to "Complete!" when omitted.

Example:
        histdl add https://domain.com/file.zip
        histdl add https://domain.com/file.zip "Download Failed"

`
	DeleteDescription = `The delete command removes a record by its row number as
printed by the list command. Pass the same --search, --pages
or --all flags you gave list so the row numbers line up.

Example:
        histdl delete 3
        histdl delete 1 --search ubuntu

`
	ClearDescription = `The clear command deletes the entire download history for
the current user. It asks for confirmation first unless
--force is given.

Example:
        histdl clear

`
	ExportDescription = `The export command writes the full download history to a
plain text file, oldest record first. The file name defaults
to the configured export name in the current directory.

Example:
        histdl export
        histdl export ~/backups/history.txt

`
	CopyDescription = `The copy command copies a record's url to the system
clipboard. The row number follows the list command, so pass
the same --search, --pages or --all flags you gave list.

Example:
        histdl copy 2

`
	OpenDescription = `The open command opens a record's url in your default
browser. The row number follows the list command, so pass
the same --search, --pages or --all flags you gave list.

Example:
        histdl open 1

`
	ImportDescription = `The import command reads finished downloads out of a
browser's history database and appends them to your download
history. By default it scans the installed browsers in order
and takes the first one with history; use --browser to pick
one, or --file to point at a database copy directly.

Example:
        histdl import
        histdl import --browser firefox --limit 50

`
)
