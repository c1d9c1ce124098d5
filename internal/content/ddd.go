package content

import "learnhub-content/internal/domain"

func domainDrivenDesign() domain.Bundle {
	return domain.Bundle{
		ID: "0006_domain_driven_design",
		Topic: domain.TopicSeed{
			Slug:          "domain-driven-design",
			Name:          "Domain-Driven Design",
			Description:   "Modelling software around the business domain: shared language, entities and value objects, and aggregates that guard their own consistency.",
			EstimatedTime: 240,
			OrderIndex:    4,
		},
		Lessons: []domain.LessonSeed{
			{
				Slug:            "ubiquitous-language",
				Title:           "Ubiquitous Language",
				Summary:         "Why the words in the code must be the words of the business, and what a bounded context does when one word means two things.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   30,
				OrderIndex:      1,
				KeyPoints: []string{
					"The ubiquitous language is the shared vocabulary of developers and domain experts",
					"Class, method, and table names come from that vocabulary, not from technical habit",
					"Translation layers between business words and code words breed bugs",
					"A bounded context is the boundary within which a term has exactly one meaning",
				},
				Content: `# Ubiquitous Language

Most project misunderstandings are vocabulary problems wearing a
technical costume. The business says "policy", the code says
InsuranceContractRecord, the database says POL_MASTER, and every
conversation between an expert and a developer passes through two silent
translations. Each translation is a place for meaning to leak.

Domain-driven design's first move is brutally simple: one language,
spoken by everyone, embedded in the code. If the experts say a learner
*enrolls* in a course, the code has an Enrollment and an enroll method,
not a UserCourseLinkEntity with an insert.

## The language is discovered, not decreed

Building the language is iterative work done in conversation. When an
expert corrects a developer, "no, a submitted quiz isn't *graded*, it's
*scored*; grading happens per course", that distinction goes into the
model the same week. The glossary is not documentation of the code; the
code is the executable form of the glossary.

## Bounded contexts

Large domains refuse a single vocabulary. "Lesson" may mean a unit of
content to the curriculum team and a scheduled tutoring session to the
booking team. Forcing one model to serve both produces a class with
thirty fields, half of them always null.

A bounded context draws the line: within this context, a term has
exactly one meaning and one model. Between contexts, explicit
translation happens at the boundary, deliberately, in one place,
instead of implicitly everywhere. Naming those contexts and mapping
their relationships is the strategic half of DDD, and it is worth doing
before arguing about entities.`,
			},
			{
				Slug:            "entities-and-value-objects",
				Title:           "Entities and Value Objects",
				Summary:         "The two building blocks of a domain model, split by one question: does identity matter, or only the values?",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   40,
				OrderIndex:      2,
				KeyPoints: []string{
					"An entity has identity that persists while its attributes change",
					"A value object is defined entirely by its attributes and is immutable",
					"Two value objects with equal attributes are interchangeable",
					"Modelling measures and descriptions as value objects removes whole bug classes",
				},
				Content: `# Entities and Value Objects

Every object in a domain model answers one sorting question: if all its
attributes changed, would it still be the same thing?

## Entities: identity over attributes

A learner who changes their email, display name, and password is still
the same learner. That continuity is identity, and objects that have it
are entities. Entities carry an identifier, are compared by it, and have
a lifecycle: created, modified over time, eventually archived.

Because entities mutate, they are where invariants need defending, and
where most of a model's complexity concentrates. Keeping them few is a
design win.

## Value objects: attributes are everything

Money of 19.99 EUR is not "a particular" 19.99 EUR; any other 19.99 EUR
is interchangeable with it. Objects like this, money, a date range, a
difficulty level, a slug, are value objects: defined entirely by their
attributes, compared by equality of those attributes, and immutable.
Operations return new values instead of mutating:

    price := money.New(1999, "EUR")
    discounted := price.Multiply(0.8) // price is unchanged

## Why the distinction pays

Modelling "estimated time in minutes" as a bare int invites the classic
bug of adding minutes to an order count. An EstimatedTime value object
with explicit construction and arithmetic makes the invalid operation
unrepresentable. Immutability also makes value objects safe to share
across threads and cheap to reason about.

The practical heuristic: make everything a value object until identity
and lifecycle force an entity into existence. Models with many values
and few entities are the ones that stay maintainable.`,
			},
			{
				Slug:            "aggregates-and-repositories",
				Title:           "Aggregates and Repositories",
				Summary:         "Clustering entities behind a root that enforces consistency, and the repository pattern that loads and saves the cluster whole.",
				DifficultyLevel: domain.DifficultyAdvanced,
				EstimatedTime:   45,
				OrderIndex:      3,
				KeyPoints: []string{
					"An aggregate is a consistency boundary with a single entry point, the root",
					"External code references the root only, never inner members directly",
					"One transaction modifies one aggregate; cross-aggregate changes are eventually consistent",
					"A repository loads and saves whole aggregates and speaks the domain's language",
				},
				Content: `# Aggregates and Repositories

Invariants rarely live in a single object. "A quiz must have between two
and six options per question" involves the quiz, its questions, and
their options. If any code can reach any object and mutate it, the
invariant is everyone's job, which means nobody's.

## The aggregate

An aggregate clusters the objects that must change together under one
root entity. The root is the only entry point: outside code holds a
reference to the quiz, never directly to question seventeen. Every
mutation goes through a root method, and the root enforces the rules
before accepting the change:

    func (q *Quiz) AddOption(questionID string, text string) error {
        question, ok := q.question(questionID)
        if !ok {
            return ErrQuestionNotFound
        }
        if len(question.options) >= maxOptions {
            return ErrTooManyOptions
        }
        question.options = append(question.options, Option{Text: text})
        return nil
    }

The aggregate is also the transactional boundary: one transaction loads
one aggregate, mutates it through the root, and saves it. Rules that
span aggregates, "a learner may enroll in at most ten courses", are kept
eventually consistent instead, because locking multiple aggregates in
one transaction is how deadlocks and contention are bred.

## Repositories

A repository gives the illusion of an in-memory collection of
aggregates: Get returns a fully loaded quiz, Save persists it whole.
The interface belongs to the domain and speaks its language; the
implementation belongs to infrastructure and speaks SQL. Narrow,
aggregate-shaped repositories are a feature, not a limitation: if some
screen needs a flat list of ten thousand rows, that is a read model's
job, not the aggregate's.

Small aggregates, referenced by ID across boundaries, are the hard-won
practical advice. The giant Course aggregate that owns every lesson,
comment, and enrollment serializes all writes behind one lock.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"entities-and-value-objects": {
				{
					Title:    "An immutable money value object",
					Language: "go",
					Code: `type Money struct {
    amount   int64 // minor units
    currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
    if currency == "" {
        return Money{}, errors.New("currency required")
    }
    return Money{amount: amount, currency: currency}, nil
}

func (m Money) Add(other Money) (Money, error) {
    if m.currency != other.currency {
        return Money{}, fmt.Errorf("cannot add %s to %s", other.currency, m.currency)
    }
    return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}`,
					Explanation: "Construction validates, operations return new values, and mixing currencies is a compile-visible error path instead of a silent float addition.",
					OrderIndex:  1,
				},
			},
			"aggregates-and-repositories": {
				{
					Title:    "A repository interface owned by the domain",
					Language: "go",
					Code: `type QuizRepository interface {
    Get(ctx context.Context, id QuizID) (*Quiz, error)
    Save(ctx context.Context, quiz *Quiz) error
}

func (s *AuthoringService) AddOption(ctx context.Context, quizID QuizID, questionID, text string) error {
    quiz, err := s.quizzes.Get(ctx, quizID)
    if err != nil {
        return err
    }
    if err := quiz.AddOption(questionID, text); err != nil {
        return err
    }
    return s.quizzes.Save(ctx, quiz)
}`,
					Explanation: "Load the aggregate, mutate through the root, save it whole. The service never reaches past the root, so the two-to-six options rule is enforced in exactly one place.",
					OrderIndex:  1,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"ubiquitous-language": {
				{
					QuestionText: "The curriculum team and the booking team mean different things by 'lesson'. What does DDD prescribe?",
					Options: []string{
						"A single Lesson class with fields for both meanings",
						"Separate bounded contexts, each with its own model, translating explicitly at the boundary",
						"Renaming one team's concept in the glossary",
						"Letting the database schema decide the canonical meaning",
					},
					CorrectAnswer: "Separate bounded contexts, each with its own model, translating explicitly at the boundary",
					Explanation:   "Forcing one model to serve two meanings produces the thirty-field class. Bounded contexts give each meaning a clean model and move translation to one deliberate place.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
			},
			"entities-and-value-objects": {
				{
					QuestionText: "Which question decides whether to model a concept as an entity or a value object?",
					Options: []string{
						"Whether it will be stored in its own table",
						"Whether it would still be the same thing if all its attributes changed",
						"Whether it has more than three fields",
						"Whether it appears in the user interface",
					},
					CorrectAnswer: "Whether it would still be the same thing if all its attributes changed",
					Explanation:   "Identity that survives attribute change makes an entity. If equal attributes mean interchangeable objects, it is a value object and should be immutable.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "Why are value objects made immutable?",
					Options: []string{
						"To save memory",
						"So they can be compared, shared, and passed around without defensive copying or aliasing bugs",
						"Because databases cannot update them",
						"To satisfy the garbage collector",
					},
					CorrectAnswer: "So they can be compared, shared, and passed around without defensive copying or aliasing bugs",
					Explanation:   "A value that cannot change is safe to share across threads and aggregate boundaries. Operations return new values, which keeps equality semantics coherent.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    2,
				},
			},
			"aggregates-and-repositories": {
				{
					QuestionText: "Why should one transaction modify only one aggregate?",
					Options: []string{
						"Because databases forbid multi-table transactions",
						"Because the aggregate is the designed consistency boundary; locking several breeds contention and deadlocks",
						"Because repositories cannot save two objects",
						"Because eventual consistency is always faster",
					},
					CorrectAnswer: "Because the aggregate is the designed consistency boundary; locking several breeds contention and deadlocks",
					Explanation:   "Aggregates are sized so their invariants can be enforced under one lock. Rules spanning aggregates are made eventually consistent instead of widening the transaction.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    1,
				},
				{
					QuestionText: "A screen needs a flat list of ten thousand quiz titles. What is the DDD-aligned approach?",
					Options: []string{
						"Load ten thousand aggregates through the repository",
						"Add a TitlesOnly flag to the aggregate root",
						"Serve it from a separate read model; repositories stay aggregate-shaped",
						"Bypass the domain and query from the UI layer ad hoc",
					},
					CorrectAnswer: "Serve it from a separate read model; repositories stay aggregate-shaped",
					Explanation:   "Repositories exist to load and save consistency boundaries, not to feed list screens. Read models answer queries cheaply without dragging aggregates through memory.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
		},
	}
}
