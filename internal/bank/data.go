package bank

// registry is the load-once question catalog, keyed by scenario then
// knowledge level. Authored by hand; invariants (trap != correct,
// contiguous numbering) are enforced by tests, not at runtime.
var registry = map[string]map[string][]Question{
	"data_types": {
		"beginner":     dataTypesBeginner,
		"intermediate": dataTypesIntermediate,
	},
	"type_to_chart": {
		"beginner": typeToChartBeginner,
	},
	"chart_to_task": {
		"beginner": chartToTaskBeginner,
	},
	"data_preparation": {
		"beginner": dataPreparationBeginner,
	},
}

var dataTypesBeginner = []Question{
	{
		Number: 1,
		Text:   "A dataset contains a column 'ProductID' with values like 1001, 1002, 1003. What type of data is this?",
		Options: map[string]string{
			"A": "Continuous numerical data",
			"B": "Discrete numerical data for calculations",
			"C": "Categorical identifier (nominal)",
			"D": "Ordinal data",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "B",
		TriggeredBy:   []string{"ids_are_numbers"},
		Explanation:   "ProductID is a categorical identifier (nominal data), not quantitative. Even though it uses numbers, it represents categories and should not be used in calculations.",
	},
	{
		Number: 2,
		Text:   "Survey responses range from 'Strongly Disagree' (1) to 'Strongly Agree' (5). What is the MOST important consideration when visualizing this data?",
		Options: map[string]string{
			"A": "It's continuous data, so use a line chart",
			"B": "It's ordinal data with meaningful order but unequal intervals",
			"C": "It's nominal categorical data with no order",
			"D": "It's discrete numerical data suitable for any calculation",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"likert_is_continuous"},
		Explanation:   "Likert scale data is ordinal - it has a meaningful order, but the intervals between values aren't necessarily equal, so treat it differently than continuous numerical data.",
	},
	{
		Number: 3,
		Text:   "Which of the following is an example of continuous numerical data?",
		Options: map[string]string{
			"A": "Number of employees in a company (e.g., 50, 51, 52)",
			"B": "Temperature readings (e.g., 72.3°F, 72.5°F, 72.7°F)",
			"C": "T-shirt sizes (Small, Medium, Large)",
			"D": "Customer satisfaction rating (1-5 stars)",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"counts_are_continuous"},
		Explanation:   "Temperature is continuous because it can take any value within a range. Employee count is discrete (can't have 50.5 employees), and the others are categorical.",
	},
	{
		Number: 4,
		Text:   "You have a 'signup_date' column with values like '2024-01-15', '2024-02-20'. What type of data is this?",
		Options: map[string]string{
			"A": "Nominal categorical",
			"B": "Ordinal categorical",
			"C": "Temporal (time-based) data",
			"D": "Continuous numerical",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"dates_are_labels"},
		Explanation:   "Dates are temporal data - they have chronological order and are often used to show trends over time.",
	},
	{
		Number: 5,
		Text:   "A dataset has department codes: 101=Sales, 102=Marketing, 103=Engineering. How should you treat these codes?",
		Options: map[string]string{
			"A": "As continuous numbers for mathematical operations",
			"B": "As nominal categorical labels, not for calculations",
			"C": "As ordinal data showing department hierarchy",
			"D": "As discrete numerical data for averaging",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"ids_are_numbers"},
		Explanation:   "Department codes are nominal categorical identifiers. The numbers are just labels and shouldn't be used in calculations (averaging departments makes no sense).",
	},
}

var dataTypesIntermediate = []Question{
	{
		Number: 1,
		Text:   "A 'ZipCode' column holds values like 02139 and 90210, imported as integers (leading zeros lost). How should the column be treated for analysis?",
		Options: map[string]string{
			"A": "As discrete numerical data; the import was correct",
			"B": "As nominal categorical data stored as text, restoring leading zeros",
			"C": "As ordinal data since higher codes are further west",
			"D": "As continuous numerical data after normalization",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"ids_are_numbers"},
		Explanation:   "Zip codes are nominal identifiers. Storing them as integers loses leading zeros and invites meaningless arithmetic; they belong in a text column.",
	},
	{
		Number: 2,
		Text:   "A dashboard reports the 'average star rating' of a product as 3.7 from 1-5 star reviews. What is the main statistical caveat?",
		Options: map[string]string{
			"A": "None; star ratings are numeric so the mean is well-defined",
			"B": "Star ratings are ordinal, so the mean assumes equal intervals that may not hold",
			"C": "The mean should be replaced by the mode in all cases",
			"D": "Star ratings are nominal, so no aggregate is meaningful",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"likert_is_continuous"},
		Explanation:   "Star ratings are ordinal. The mean treats the gap between 1-2 stars the same as 4-5 stars, an equal-interval assumption the scale doesn't guarantee; medians or distributions are safer.",
	},
	{
		Number: 3,
		Text:   "A 'churned' column holds 0 and 1 (0 = retained, 1 = churned). What is this data, and what follows for visualization?",
		Options: map[string]string{
			"A": "Continuous numerical; a histogram of the raw values is ideal",
			"B": "Ordinal; 1 ranks above 0",
			"C": "Binary categorical; visualize counts or proportions per category",
			"D": "Discrete numerical; a line chart over row index shows the pattern",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"counts_are_continuous"},
		Explanation:   "A 0/1 flag is binary categorical data encoded as numbers. Proportions and counts per category (or rates over time) are the meaningful views.",
	},
	{
		Number: 4,
		Text:   "A 'session_duration' column holds seconds: 12.4, 310.0, 45.7. Which statement is accurate?",
		Options: map[string]string{
			"A": "Durations are ordinal since longer sessions rank higher",
			"B": "Durations are continuous ratio data with a meaningful zero",
			"C": "Durations are nominal once bucketed into short/medium/long",
			"D": "Durations are temporal data, like dates",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "D",
		TriggeredBy:   []string{"dates_are_labels"},
		Explanation:   "Durations are continuous ratio measurements: zero means no time elapsed and ratios are meaningful. They measure elapsed time but aren't calendar (temporal) data points.",
	},
	{
		Number: 5,
		Text:   "A 'discount_tier' column holds Bronze, Silver, Gold. A colleague one-hot encodes it, another maps it to 1, 2, 3. Which is the better default for charting, and why?",
		Options: map[string]string{
			"A": "1, 2, 3 mapping, because tiers are pure nominal labels",
			"B": "Either works; the encodings are interchangeable",
			"C": "Keep the ordered labels: the data is ordinal, so preserve order without asserting equal spacing",
			"D": "One-hot, because tiers have no meaningful order",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "D",
		TriggeredBy:   []string{"likert_is_continuous"},
		Explanation:   "Tiers are ordinal: Bronze < Silver < Gold. Charts should preserve that order, but an integer mapping implies equal spacing between tiers, which the labels don't promise.",
	},
}

var typeToChartBeginner = []Question{
	{
		Number: 1,
		Text:   "You need to compare quarterly revenue across 5 product categories. Which chart is MOST appropriate?",
		Options: map[string]string{
			"A": "Line chart",
			"B": "Scatter plot",
			"C": "Bar chart or column chart",
			"D": "Pie chart",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "D",
		TriggeredBy:   []string{"pie_for_everything"},
		Explanation:   "Bar/column charts are ideal for comparing numerical values across discrete categories. Each category gets its own bar, making comparison easy.",
	},
	{
		Number: 2,
		Text:   "When is a line chart preferred over a bar chart?",
		Options: map[string]string{
			"A": "When comparing discrete categories like product types",
			"B": "When showing trends over time or continuous data",
			"C": "When showing composition of a whole",
			"D": "When displaying the relationship between two numerical variables",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"lines_for_categories"},
		Explanation:   "Line charts are best for temporal data or continuous data where the connection between points is meaningful, showing trends and patterns.",
	},
	{
		Number: 3,
		Text:   "You have two numerical variables: employee age and salary. Which chart type would best show their relationship?",
		Options: map[string]string{
			"A": "Pie chart",
			"B": "Bar chart",
			"C": "Line chart",
			"D": "Scatter plot",
		},
		CorrectAnswer: "D",
		TrapAnswer:    "C",
		TriggeredBy:   []string{"lines_for_categories"},
		Explanation:   "Scatter plots are designed to show relationships between two numerical variables and can reveal correlations or patterns.",
	},
	{
		Number: 4,
		Text:   "A pie chart is most appropriate when you want to:",
		Options: map[string]string{
			"A": "Show trends over time",
			"B": "Compare many categories (10+)",
			"C": "Display parts of a whole (composition)",
			"D": "Show correlation between variables",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "B",
		TriggeredBy:   []string{"pie_for_everything"},
		Explanation:   "Pie charts show composition - how parts make up a whole. They work best with few categories (3-7) to show proportions.",
	},
	{
		Number: 5,
		Text:   "You have monthly sales data for 12 months. Which chart would be LEAST appropriate?",
		Options: map[string]string{
			"A": "Line chart showing the trend",
			"B": "Bar chart showing monthly values",
			"C": "Pie chart with 12 slices for each month",
			"D": "Area chart showing cumulative sales",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"pie_for_everything"},
		Explanation:   "A pie chart is least appropriate because months don't represent parts of a whole - they're sequential time periods better shown with line or bar charts.",
	},
}

var chartToTaskBeginner = []Question{
	{
		Number: 1,
		Text:   "Your analytical task is to 'identify trends in website traffic over the past year'. Which chart type best matches this task?",
		Options: map[string]string{
			"A": "Bar chart",
			"B": "Pie chart",
			"C": "Line chart",
			"D": "Scatter plot",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"bars_show_trends"},
		Explanation:   "Line charts are ideal for trend analysis over time. They clearly show how values change and make patterns like growth or seasonality visible.",
	},
	{
		Number: 2,
		Text:   "You need to 'compare market share among 5 competitors'. Which chart best supports this task?",
		Options: map[string]string{
			"A": "Line chart",
			"B": "Scatter plot",
			"C": "Pie chart or stacked bar chart",
			"D": "Histogram",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"one_chart_fits_all"},
		Explanation:   "Market share is about composition (parts of a whole). Pie charts or 100% stacked bar charts effectively show how the total market is divided.",
	},
	{
		Number: 3,
		Text:   "The task is to 'understand the distribution of test scores in a class'. Which chart is most appropriate?",
		Options: map[string]string{
			"A": "Pie chart",
			"B": "Line chart",
			"C": "Histogram or box plot",
			"D": "Scatter plot",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"one_chart_fits_all"},
		Explanation:   "Histograms show distributions of continuous data by grouping values into bins. Box plots also show distribution with quartiles and outliers.",
	},
	{
		Number: 4,
		Text:   "Your task is to 'find the correlation between advertising spend and sales revenue'. Best visualization?",
		Options: map[string]string{
			"A": "Two separate pie charts",
			"B": "Scatter plot with trendline",
			"C": "Stacked bar chart",
			"D": "Multiple line charts",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "D",
		TriggeredBy:   []string{"bars_show_trends"},
		Explanation:   "Scatter plots are designed to show relationships between two numerical variables. A trendline can confirm correlation strength.",
	},
	{
		Number: 5,
		Text:   "You need to 'show how budget is allocated across 8 departments'. Which task is this, and which chart fits best?",
		Options: map[string]string{
			"A": "Trend analysis - use line chart",
			"B": "Comparison - use bar chart",
			"C": "Correlation - use scatter plot",
			"D": "Distribution - use histogram",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"one_chart_fits_all"},
		Explanation:   "Budget allocation across departments is a comparison task. Bar charts excel at comparing values across multiple categories.",
	},
}

var dataPreparationBeginner = []Question{
	{
		Number: 1,
		Text:   "Your date column has mixed formats: '01/15/2024', '2024-02-20', '03-MAR-2024'. What should you do FIRST?",
		Options: map[string]string{
			"A": "Delete all rows with inconsistent formats",
			"B": "Standardize all dates to a single format",
			"C": "Use them as-is; visualization tools will handle it",
			"D": "Convert them all to categorical data",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "C",
		TriggeredBy:   []string{"tools_fix_dirty_data"},
		Explanation:   "Standardizing date formats is critical for proper sorting and time-based analysis. Inconsistent formats will cause errors in temporal visualizations.",
	},
	{
		Number: 2,
		Text:   "You have a revenue column with 15% missing values. Which approach is LEAST appropriate?",
		Options: map[string]string{
			"A": "Remove rows with missing revenue if the dataset is large enough",
			"B": "Impute with median revenue if values are missing at random",
			"C": "Replace all missing values with zero",
			"D": "Mark missing values as a separate category if missingness is meaningful",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"missing_means_zero"},
		Explanation:   "Replacing missing values with zero is dangerous because it assumes zero revenue, which may not be true. Zero is a meaningful value, not 'missing'.",
	},
	{
		Number: 3,
		Text:   "Your data has one row per transaction (1000 rows). You want a bar chart of monthly sales. What data preparation is needed?",
		Options: map[string]string{
			"A": "No preparation needed; use raw transaction data",
			"B": "Aggregate transactions by month and sum sales",
			"C": "Filter to show only the first transaction per month",
			"D": "Convert all dates to categorical months",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"raw_data_is_ready"},
		Explanation:   "You need to aggregate (group) transaction-level data by month and sum the sales to get monthly totals suitable for visualization.",
	},
	{
		Number: 4,
		Text:   "You notice extreme outliers in your salary data (e.g., CEO salary is 50x the median). Before visualizing, you should:",
		Options: map[string]string{
			"A": "Always remove all outliers automatically",
			"B": "Investigate whether outliers are errors or legitimate extreme values",
			"C": "Change all outliers to the median value",
			"D": "Ignore them; they won't affect the visualization",
		},
		CorrectAnswer: "B",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"outliers_always_errors"},
		Explanation:   "Outliers could be data errors OR legitimate extreme values (like CEO salary). Investigate first - don't automatically remove or modify without understanding why they exist.",
	},
	{
		Number: 5,
		Text:   "Your dataset has a 'price' column stored as text: '$1,234.56'. Before creating a histogram, you need to:",
		Options: map[string]string{
			"A": "Use it as-is; it's already numeric",
			"B": "Convert to categorical data",
			"C": "Remove '$' and ',' symbols, then convert to numeric type",
			"D": "Delete the column and recreate it",
		},
		CorrectAnswer: "C",
		TrapAnswer:    "A",
		TriggeredBy:   []string{"tools_fix_dirty_data"},
		Explanation:   "Text-formatted numbers must be cleaned (remove currency symbols, commas) and type-cast to numeric for mathematical operations and proper visualization.",
	},
}
