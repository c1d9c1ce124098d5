package content

import "learnhub-content/internal/domain"

func relationalDatabases() domain.Bundle {
	return domain.Bundle{
		ID: "0007_relational_databases",
		Topic: domain.TopicSeed{
			Slug:          "relational-databases",
			Name:          "Relational Databases",
			Description:   "Working effectively with SQL databases: joins, indexes, and the transaction guarantees applications quietly depend on.",
			EstimatedTime: 270,
			OrderIndex:    5,
		},
		Lessons: []domain.LessonSeed{
			{
				Slug:            "sql-joins-explained",
				Title:           "SQL Joins Explained",
				Summary:         "Inner, left, and the rest: what each join keeps, what it discards, and the row-multiplication trap hiding in one-to-many joins.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   40,
				OrderIndex:      1,
				KeyPoints: []string{
					"A join matches rows across tables by a predicate, usually a key equality",
					"INNER JOIN keeps only matched rows; LEFT JOIN keeps every left row, padding misses with NULL",
					"Joining one-to-many multiplies parent rows once per child",
					"Filters on the right table of a LEFT JOIN belong in the ON clause, not the WHERE",
				},
				Content: `# SQL Joins Explained

A normalized schema splits data across tables; joins put it back
together at query time. Every join answers the same question, which rows
from the left table combine with which rows from the right, and the join
type decides what happens to rows with no partner.

## Inner and left

    SELECT t.name, l.title
    FROM topics t
    INNER JOIN lessons l ON l.topic_id = t.id;

INNER JOIN keeps only pairs that match: a topic with no lessons vanishes
from the result. LEFT JOIN keeps every row of the left table and fills
the right side with NULLs where no match exists, which is the join for
"all topics, with their lessons if any". RIGHT JOIN is a LEFT JOIN
written backwards; FULL OUTER JOIN keeps unmatched rows from both sides.

## The multiplication trap

Joining a parent to a one-to-many child repeats the parent once per
child. A topic with twelve lessons appears twelve times; aggregate
without accounting for it and the topic's estimated time sums to twelve
times its real value. The standard defenses are aggregating the child
side in a subquery before joining, or COUNT(DISTINCT) when only counts
are involved.

## WHERE versus ON with outer joins

With a LEFT JOIN, placing a right-table condition in the WHERE clause
silently converts the join back to an inner one:

    -- Loses topics that have no beginner lessons at all:
    ... LEFT JOIN lessons l ON l.topic_id = t.id
    WHERE l.difficulty_level = 'beginner'

    -- Keeps every topic, joining only beginner lessons:
    ... LEFT JOIN lessons l ON l.topic_id = t.id
       AND l.difficulty_level = 'beginner'

NULL rows from unmatched topics fail the WHERE comparison and are
dropped. The filter belongs in the ON clause when the intent is to
filter the join, not the result.`,
			},
			{
				Slug:            "indexing-strategies",
				Title:           "Indexing Strategies",
				Summary:         "How B-tree indexes turn scans into seeks, why column order in composite indexes matters, and the write cost every index charges.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   45,
				OrderIndex:      2,
				KeyPoints: []string{
					"An index is a sorted structure that trades write work for read speed",
					"Composite indexes serve queries that filter on a prefix of their columns",
					"Foreign key columns should be indexed explicitly; most databases do not do it for you",
					"Every index slows inserts and updates; unused indexes are pure cost",
				},
				Content: `# Indexing Strategies

Without an index, the database answers a filtered query by reading every
row. An index, almost always a B-tree, keeps the indexed columns in
sorted order with pointers to the rows, turning the scan into a seek:
logarithmic instead of linear.

## Composite indexes and the prefix rule

An index on (topic_id, slug) is sorted by topic_id first, then slug
within each topic. It therefore serves queries filtering on topic_id
alone, or on topic_id and slug together, but a query on slug alone gets
nothing from it; the slugs are scattered across the whole structure.
Column order is a design decision: put the columns queried by equality
first, ranges last.

## Index your foreign keys

A cascade delete of a topic must find its lessons; the children's query
pattern is "all rows where topic_id = X". Most relational databases
index primary keys automatically but do not index foreign key columns.
Forgetting the index on lessons.topic_id makes every topic delete, and
every join from topics to lessons, a sequential scan of lessons. Schema
reviews should treat an unindexed foreign key as a defect.

## The price of reads is paid on writes

Every index must be updated by every INSERT, UPDATE of indexed columns,
and DELETE. A table with eight indexes does roughly nine writes per
insert. Indexes that no query uses are pure cost, and databases ship
statistics views that reveal them. The discipline is the same as for
code: add what is needed, measure, and remove what is not.

## Covering queries

If an index contains every column a query touches, the database can
answer from the index alone without visiting the table. Adding one
selected column to an index definition sometimes removes the table
lookup entirely, which is the difference between memory-speed and
disk-speed for hot queries.`,
			},
			{
				Slug:            "transactions-and-isolation",
				Title:           "Transactions and Isolation",
				Summary:         "ACID in practice: what atomicity buys, what the isolation levels actually permit, and why the default level surprises people.",
				DifficultyLevel: domain.DifficultyAdvanced,
				EstimatedTime:   50,
				OrderIndex:      3,
				KeyPoints: []string{
					"A transaction is all-or-nothing: partial work never becomes visible",
					"Isolation levels trade correctness anomalies for concurrency",
					"Read committed, the common default, still permits non-repeatable reads",
					"Rollback on error must be guaranteed by structure, not by remembering to call it",
				},
				Content: `# Transactions and Isolation

A transaction groups statements into a unit that either commits
completely or leaves no trace. Between BEGIN and COMMIT, the database
promises atomicity, and on any failure, a crash, a constraint violation,
a lost connection, the whole unit rolls back.

## Atomicity is an application tool

Seeding a content bundle means inserting a topic, its lessons, their
examples and questions, and a bookkeeping row. If the process dies after
the third insert, a half-ingested bundle would be worse than none: the
next run would see partial data and make wrong decisions. Wrapping the
bundle in one transaction makes the failure mode clean: either the
bundle exists entirely or it never happened.

The structural discipline matters as much as the feature: acquire the
transaction in one place and guarantee rollback on every error path,
with defer, finally, or a helper that takes a closure. Rollback that
depends on every error branch remembering to call it will eventually
be forgotten by one of them.

## Isolation levels

With concurrent transactions, the question becomes what each one may
observe of the others. The standard levels, from loosest to strictest:

- **Read uncommitted**: may see others' uncommitted writes (dirty reads).
- **Read committed**: sees only committed data, but two identical
  reads in one transaction may return different rows.
- **Repeatable read**: rows read once stay stable for the transaction.
- **Serializable**: the outcome equals some serial execution order.

Stricter levels cost concurrency: more locking, more retries on
conflict. Most applications run at read committed, the common default,
and most of the time it is fine, until a balance check and the
withdrawal that follows it read different states of the world. Knowing
the level you run at, and which anomalies it permits, is the actual
lesson.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"sql-joins-explained": {
				{
					Title:    "Aggregating the many side before joining",
					Language: "sql",
					Code: `SELECT t.name,
       COALESCE(lc.lesson_count, 0) AS lesson_count
FROM topics t
LEFT JOIN (
    SELECT topic_id, COUNT(*) AS lesson_count
    FROM lessons
    GROUP BY topic_id
) lc ON lc.topic_id = t.id
ORDER BY t.order_index;`,
					Explanation: "Grouping lessons before the join keeps topics at one row each, so no parent column is multiplied and topics without lessons still appear with a count of zero.",
					OrderIndex:  1,
				},
			},
			"indexing-strategies": {
				{
					Title:    "Indexes a lessons table actually needs",
					Language: "sql",
					Code: `-- Uniqueness and the common lookup path share one index.
CREATE UNIQUE INDEX lessons_topic_slug ON lessons (topic_id, slug);

-- Serves joins and cascade deletes from topics.
CREATE INDEX idx_lessons_topic_id ON lessons (topic_id);

-- A query filtering only on slug needs its own index;
-- the composite above cannot help it.
CREATE INDEX idx_lessons_slug ON lessons (slug);`,
					Explanation: "The composite index serves prefix queries on topic_id, but slug-only lookups fall outside the prefix rule and need a dedicated index if they are hot.",
					OrderIndex:  1,
				},
			},
			"transactions-and-isolation": {
				{
					Title:    "Rollback guaranteed by structure",
					Language: "go",
					Code: `func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
    tx, err := db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    if err := fn(tx); err != nil {
        _ = tx.Rollback()
        return err
    }
    return tx.Commit()
}`,
					Explanation: "Every error path flows through exactly one rollback. Callers cannot forget it because the helper owns the transaction's lifecycle.",
					OrderIndex:  1,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"sql-joins-explained": {
				{
					QuestionText: "A LEFT JOIN query filters the right table in the WHERE clause. What is the effect?",
					Options: []string{
						"The query fails to parse",
						"Unmatched left rows are dropped, silently turning the join into an inner join",
						"The filter is ignored",
						"The right table is scanned twice",
					},
					CorrectAnswer: "Unmatched left rows are dropped, silently turning the join into an inner join",
					Explanation:   "Unmatched rows carry NULLs in the right table's columns, and NULL fails almost every WHERE comparison. Filters meant for the join belong in the ON clause.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "Summing a parent column after joining its one-to-many children overstates the total. Why?",
					Options: []string{
						"SQL rounds during joins",
						"The join repeats each parent row once per child, so the parent's value is summed once per child",
						"NULLs are counted as zero",
						"GROUP BY reorders the rows",
					},
					CorrectAnswer: "The join repeats each parent row once per child, so the parent's value is summed once per child",
					Explanation:   "Row multiplication is inherent to one-to-many joins. Aggregate the child side first, or count distinct parents, to keep parent-level numbers honest.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
			"indexing-strategies": {
				{
					QuestionText: "An index exists on (topic_id, slug). Which query can it NOT accelerate?",
					Options: []string{
						"WHERE topic_id = 7",
						"WHERE topic_id = 7 AND slug = 'intro'",
						"WHERE slug = 'intro'",
						"A join on lessons.topic_id = topics.id",
					},
					CorrectAnswer: "WHERE slug = 'intro'",
					Explanation:   "A composite index serves queries on a leading prefix of its columns. Slug alone is not a prefix of (topic_id, slug), so those values are scattered across the whole tree.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "Why should foreign key columns be indexed explicitly?",
					Options: []string{
						"The SQL standard requires it",
						"Joins and cascade deletes search by those columns, and most databases do not index them automatically",
						"Foreign keys are invalid without an index",
						"It reduces the size of the referenced table",
					},
					CorrectAnswer: "Joins and cascade deletes search by those columns, and most databases do not index them automatically",
					Explanation:   "Primary keys get indexes automatically; foreign keys usually do not. An unindexed FK turns every parent delete and join into a sequential scan of the child table.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    2,
				},
			},
			"transactions-and-isolation": {
				{
					QuestionText: "A seed process inserts a topic and dies before inserting its lessons. With the bundle wrapped in a transaction, what does the next run observe?",
					Options: []string{
						"The topic without lessons",
						"Nothing from the failed run; the transaction rolled back entirely",
						"A lock left on the topics table",
						"The lessons without the topic",
					},
					CorrectAnswer: "Nothing from the failed run; the transaction rolled back entirely",
					Explanation:   "Atomicity means partial work never becomes visible. The database rolls back the in-flight transaction on connection loss, and the rerun starts from a clean state.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    1,
				},
				{
					QuestionText: "Under read committed isolation, which anomaly remains possible?",
					Options: []string{
						"Dirty reads of uncommitted data",
						"Two identical reads in one transaction returning different committed data",
						"Lost database files",
						"Reads blocking all writes for the transaction's duration",
					},
					CorrectAnswer: "Two identical reads in one transaction returning different committed data",
					Explanation:   "Read committed only promises that each read sees committed data. Another transaction may commit between two reads, which is the non-repeatable read anomaly.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    2,
				},
			},
		},
	}
}
