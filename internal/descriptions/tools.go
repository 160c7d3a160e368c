package descriptions

// Tool descriptions with practical examples and use cases

const (
	DD1750GenerateDescription = `Convert a Bill of Materials (BOM) PDF into a completed DD Form 1750 packing list.

**When to use:** You have a BOM PDF with item tables and a blank DD1750 template PDF, and need the filled-out packing list.

**Why it's useful:** Locates the item tables in the BOM regardless of their column layout, extracts the reportable line items, and lays them out on the printed form's grid with correct pagination (18 items per page).

**Examples:**
• "Generate DD1750.pdf from unit-bom.pdf using dd1750-template.pdf"
• "Fill out the packing list for hand-receipt.pdf, skipping the cover page (start_page=1)"

**Behavior notes:**
- An item count of zero means the BOM was readable but contained no reportable rows; the output is then the bare template first page.
- Failures to read the BOM or write the output are reported as errors, never as an empty result.

**Best practices:** Validate both inputs with 'pdf_validate_file' first. If the item count is unexpectedly zero, use 'bom_inspect_page' to see what the extractor sees.`

	BOMExtractItemsDescription = `Extract packing-list line items from a BOM PDF without generating a form.

**When to use:** You want to review, count, or post-process the items before committing them to a form.

**Why it's useful:** Returns the structured items (line number, description, NSN, quantity) exactly as form generation would use them, so discrepancies can be found before printing.

**Examples:**
• "List the items in unit-bom.pdf"
• "How many reportable rows does hand-receipt.pdf contain from page 2 on?"

**Best practices:** Items are numbered in document order; a gap-free 1..N sequence is guaranteed.`

	BOMInspectPageDescription = `Show the raw text and detected table count of a single BOM page.

**When to use:** Extraction returned zero items, or fewer than expected, and you need to see why.

**Why it's useful:** The most common causes of empty extractions are header keywords the column resolver does not recognize, tables the table detector misses, and scanned pages with no text layer. The raw page view makes all three visible.

**Examples:**
• "Inspect page 0 of unit-bom.pdf"
• "Does page 3 of hand-receipt.pdf contain any detectable tables?"`

	PDFValidateFileDescription = `Verify that a file is a readable PDF before processing.

**When to use:** Before running a conversion, especially on user-supplied uploads.

**Why it's useful:** Catches missing files, wrong file types, empty or oversized files, and corrupt documents early, with a specific message for each.`

	PDFStatsFileDescription = `Report size, page count and modification time of a PDF file.

**When to use:** To pick a start page, check that a template has the expected number of pages, or sanity-check an upload.`

	DD1750ServerInfoDescription = `Get server information, available tools, and usage guidance.

**When to use:** At the start of a session to discover the tool surface, the work directory, and file size limits.`
)
