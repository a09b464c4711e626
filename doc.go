// Copyright 2026 Joshua Poirier. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package data-access moves tabular data between local files, S3-compatible
object storage and Google Sheets/Drive.

data-access can be used from the command line but is really intended to be run
from a cron job to keep datasets in object storage synchronised with the
spreadsheets they are sourced from.

data-access supports the following commands:

  - authorise, to authorise application access to Google Sheets and Drive
  - get, to download a Google Sheets worksheet range to a local TSV/CSV/XLSX file
  - put, to store a local TSV/CSV/XLSX file to a Google Sheets worksheet range
  - download, to download a Google Drive file to local disk
  - upload, to upload a local file to S3 object storage
  - transfer, to read a Google Drive file and write it to S3 as CSV
  - version, to display the version information

The gdrive, gsheets, storage and dataset packages are importable for
embedding the same operations in other programs.
*/
package dataaccess
