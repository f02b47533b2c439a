// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheets-bridge moves tabular data between files stored in Google Drive and Google Sheets worksheets.

sheets-bridge can be used from the command line but is really intended to be run from a cron job or automation
script that keeps a set of worksheets up to date with data files (CSV, TSV and Excel workbooks) dropped into Google
Drive folders.

sheets-bridge supports the following commands:

  - authorise, to authorise application access to Google Drive and Google Sheets
  - convert, to convert a CSV, TSV or Excel file to a Google Sheets spreadsheet
  - read-cell, to print the value of a single worksheet cell
  - latest, to find the most recently modified file in a folder
  - folder, to find or create a named folder
  - format-text, to format the data range of a worksheet as plain text
  - get, to download the tabular data in a spreadsheet or data file to a local TSV, CSV or XLSX file
  - upsert, to replace a worksheet with the data extracted from a spreadsheet or data file
  - put, to replace a worksheet with the contents of a local TSV, CSV or XLSX file
*/
package sheets
