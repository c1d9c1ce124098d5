package content

import "learnhub-content/internal/domain"

func oopTopic() domain.TopicSeed {
	return domain.TopicSeed{
		Slug:          "oop-fundamentals",
		Name:          "Object-Oriented Programming",
		Description:   "The core ideas of object-oriented design: encapsulation, composition, polymorphism, and the principles that keep class hierarchies from collapsing under their own weight.",
		EstimatedTime: 240,
		OrderIndex:    2,
	}
}

func oopFundamentals() domain.Bundle {
	return domain.Bundle{
		ID:    "0003_oop_fundamentals",
		Topic: oopTopic(),
		Lessons: []domain.LessonSeed{
			{
				Slug:            "encapsulation-and-abstraction",
				Title:           "Encapsulation and Abstraction",
				Summary:         "Hiding state behind behaviour, and why a small public surface is the cheapest insurance a codebase can buy.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   35,
				OrderIndex:      1,
				KeyPoints: []string{
					"Encapsulation hides an object's state behind its behaviour",
					"Invariants enforced in one place cannot be violated from anywhere else",
					"Abstraction exposes what an object does, not how it does it",
					"Getters and setters for every field are encapsulation in name only",
				},
				Content: `# Encapsulation and Abstraction

Encapsulation is the practice of hiding an object's state behind its
behaviour. Code outside the object cannot reach in and flip a field; it
must ask the object to do something, and the object enforces its own
rules while doing it.

## Invariants live in one place

Consider a bank account that must never go below zero. If the balance
field is public, every piece of code that touches it shares responsibility
for the rule, and one forgotten check breaks it. If the field is private
and the only way to change it is a withdraw method, the rule lives in
exactly one place:

    class Account {
        private int balance;

        void withdraw(int amount) {
            if (amount > balance) {
                throw new InsufficientFunds();
            }
            balance -= amount;
        }
    }

The compiler now guarantees that no caller, present or future, can create
a negative balance without going through the check.

## Abstraction is the flip side

Where encapsulation hides, abstraction exposes, but it exposes *what*,
not *how*. A queue offers push and pop; whether it is backed by a linked
list or a ring buffer is not part of the contract. Callers written against
the abstraction keep working when the implementation changes.

## The getter/setter trap

A class with a private field and a public getter and setter for it has
the ceremony of encapsulation and none of the benefit. State is still
manipulated from outside; the rules still live everywhere. The fix is to
move the behaviour to the data: instead of account.setBalance(x), write
account.withdraw(amount) and let the object defend itself.`,
			},
			{
				Slug:            "inheritance-vs-composition",
				Title:           "Inheritance vs Composition",
				Summary:         "Two ways to reuse behaviour, the fragile base class problem, and why the industry default shifted to composition.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   40,
				OrderIndex:      2,
				KeyPoints: []string{
					"Inheritance reuses by being a subtype; composition reuses by holding a collaborator",
					"Subclasses couple to the implementation details of their base class",
					"The fragile base class problem: safe-looking base changes break subclasses",
					"Prefer composition; reserve inheritance for genuine is-a relationships with stable bases",
				},
				Content: `# Inheritance vs Composition

Object-oriented languages give two main tools for reusing behaviour.
Inheritance says "I am a kind of X, give me everything X has". Composition
says "I have an X and delegate to it". The difference sounds cosmetic and
is anything but.

## What inheritance couples you to

A subclass inherits not just the public contract of its base but its
implementation details: which methods call which, in what order, with what
assumptions. The classic demonstration is a counting set that overrides
both add and addAll to count insertions, only to discover that the base
addAll calls add internally, so every bulk insert is counted twice.

Nothing in the base class's contract promised it would or would not call
add from addAll. The subclass depended on it anyway, because inheritance
gave it no other choice. This is the fragile base class problem: changes
that are safe by the base's own contract still break subclasses.

## Composition keeps the contract honest

A composed object holds its collaborator and forwards the calls it wants
to expose:

    class CountingSet {
        private final Set<String> inner = new HashSet<>();
        private int additions = 0;

        void add(String s)        { additions++; inner.add(s); }
        void addAll(List<String> xs) { additions += xs.size(); inner.addAll(xs); }
    }

The inner set can change its internal call graph freely; the wrapper only
relies on the documented behaviour of the methods it calls. The coupling
is exactly as wide as the public contract, never wider.

## When inheritance still earns its keep

Inheritance is the right tool when the relationship is genuinely "is-a",
the base class is designed and documented for extension, and the hierarchy
is shallow and stable. Framework template methods are the honest use case.
Everywhere else, the modern default is the old advice from the Design
Patterns book: favour object composition over class inheritance.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"encapsulation-and-abstraction": {
				{
					Title:    "An invariant defended by its object",
					Language: "java",
					Code: `public class Account {
    private long balanceCents;

    public void withdraw(long amountCents) {
        if (amountCents <= 0) {
            throw new IllegalArgumentException("amount must be positive");
        }
        if (amountCents > balanceCents) {
            throw new InsufficientFundsException(balanceCents, amountCents);
        }
        balanceCents -= amountCents;
    }

    public long balance() {
        return balanceCents;
    }
}`,
					Explanation: "The balance can only change through withdraw, so the non-negative invariant is checked in exactly one place and holds for every caller.",
					OrderIndex:  1,
				},
			},
			"inheritance-vs-composition": {
				{
					Title:    "The fragile base class in action",
					Language: "java",
					Code: `public class CountingSet extends HashSet<String> {
    private int additions = 0;

    @Override public boolean add(String s) {
        additions++;
        return super.add(s);
    }

    @Override public boolean addAll(Collection<? extends String> xs) {
        additions += xs.size();     // bug: super.addAll calls add()
        return super.addAll(xs);    // so every element counts twice
    }
}`,
					Explanation: "HashSet.addAll happens to call add internally, so the override double counts. Nothing in HashSet's contract forbids that internal call, which is precisely the problem with inheriting from classes not designed for extension.",
					OrderIndex:  1,
				},
				{
					Title:    "The same reuse through composition",
					Language: "java",
					Code: `public class CountingSet {
    private final Set<String> inner = new HashSet<>();
    private int additions = 0;

    public boolean add(String s) {
        additions++;
        return inner.add(s);
    }

    public boolean addAll(Collection<String> xs) {
        additions += xs.size();
        return inner.addAll(xs);
    }

    public int additions() {
        return additions;
    }
}`,
					Explanation: "The wrapper relies only on the documented behaviour of the methods it forwards to. However HashSet implements addAll internally, the count stays correct.",
					OrderIndex:  2,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"encapsulation-and-abstraction": {
				{
					QuestionText: "Why does a public getter and setter for every private field defeat encapsulation?",
					Options: []string{
						"Because getters are slower than direct field access",
						"Because state is still manipulated from outside, so invariants remain every caller's problem",
						"Because setters cannot throw exceptions",
						"Because it violates the single responsibility principle",
					},
					CorrectAnswer: "Because state is still manipulated from outside, so invariants remain every caller's problem",
					Explanation:   "Encapsulation is about moving rules next to the state they protect. Pass-through accessors keep the ceremony but scatter the rules right back across the callers.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "A queue exposes push and pop but hides whether it uses a linked list or a ring buffer. Which concept is this?",
					Options: []string{
						"Polymorphism",
						"Abstraction",
						"Inheritance",
						"Reflection",
					},
					CorrectAnswer: "Abstraction",
					Explanation:   "Abstraction exposes what an object does while hiding how. Callers written against push and pop survive any change of backing structure.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    2,
				},
			},
			"inheritance-vs-composition": {
				{
					QuestionText: "What is the fragile base class problem?",
					Options: []string{
						"Base classes cannot be instantiated",
						"Changes that respect the base class's contract can still break subclasses that depend on its internals",
						"Subclasses cannot override final methods",
						"Deep hierarchies compile slowly",
					},
					CorrectAnswer: "Changes that respect the base class's contract can still break subclasses that depend on its internals",
					Explanation:   "Inheritance couples subclasses to implementation details such as which methods call which. The base can change those freely by its own contract, breaking subclasses that assumed otherwise.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "When is inheritance still the appropriate choice?",
					Options: []string{
						"Whenever two classes share any code",
						"For genuine is-a relationships with a base class designed and documented for extension",
						"Whenever composition would need more than one field",
						"Never; inheritance is deprecated",
					},
					CorrectAnswer: "For genuine is-a relationships with a base class designed and documented for extension",
					Explanation:   "Template methods in frameworks are the honest use: shallow, stable hierarchies whose extension points are part of the contract.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    2,
				},
			},
		},
	}
}

func oopPolymorphismAndSolid() domain.Bundle {
	return domain.Bundle{
		ID: "0004_oop_polymorphism_and_solid",
		// Second bundle for the oop-fundamentals topic: appends lessons,
		// topic attributes identical to 0003.
		Topic: oopTopic(),
		Lessons: []domain.LessonSeed{
			{
				Slug:            "polymorphism-in-practice",
				Title:           "Polymorphism in Practice",
				Summary:         "Replacing type switches with dispatch: how subtype and interface polymorphism remove the conditionals that otherwise spread through a codebase.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   35,
				OrderIndex:      3,
				KeyPoints: []string{
					"Polymorphism lets one call site work with many concrete types",
					"Every type switch duplicated across a codebase is a missed dispatch",
					"Interface polymorphism decouples callers from concrete types entirely",
					"New variants extend the system by adding a type, not by editing every switch",
				},
				Content: `# Polymorphism in Practice

Polymorphism means one call site, many behaviours. The caller invokes
notify(user) and the concrete type, email, SMS, push, decides what
actually happens. The alternative is a conditional:

    switch channel.kind {
    case EMAIL: sendEmail(...)
    case SMS:   sendSms(...)
    case PUSH:  sendPush(...)
    }

One switch is harmless. The trouble is that the same switch reappears
wherever channels are handled: sending, validating, rendering previews,
calculating costs. Adding a new channel now means finding every copy.

## Dispatch instead of discrimination

With polymorphism, each channel type implements a shared contract:

    type Channel interface {
        Send(ctx context.Context, msg Message) error
        Cost(msg Message) Money
    }

The switches collapse into method calls, and the knowledge of how each
channel behaves moves into the channel's own type. A new channel is a new
type that implements the interface; no existing call site changes. This
is the open-closed principle in its practical form: open for extension,
closed for modification.

## Where a switch is still right

Polymorphism shines when variants share a stable contract and new ones
arrive over time. When the set of cases is closed and the operations over
them grow instead, a plain switch in one place, ideally exhaustive and
compiler-checked, is simpler and easier to read. Choosing the axis of
change correctly matters more than avoiding conditionals on principle.`,
			},
			{
				Slug:            "solid-principles",
				Title:           "The SOLID Principles",
				Summary:         "Five design principles that keep object-oriented code malleable, and the failure mode each one exists to prevent.",
				DifficultyLevel: domain.DifficultyAdvanced,
				EstimatedTime:   45,
				OrderIndex:      4,
				KeyPoints: []string{
					"Single responsibility: one reason to change per module",
					"Open-closed: extend behaviour by adding code, not editing it",
					"Liskov substitution: subtypes must honour the promises of their base",
					"Interface segregation: no client forced to depend on methods it never calls",
					"Dependency inversion: high-level policy depends on abstractions, not details",
				},
				Content: `# The SOLID Principles

SOLID is a mnemonic for five principles that address five distinct ways
object-oriented code rots. None of them is a law; each names a failure
mode and the design move that prevents it.

## S - Single Responsibility

A module should have one reason to change. A ReportService that formats
HTML, computes totals, and writes to disk will be edited by three
different people for three different reasons, and their changes will
collide. Split by reason for change, not by size.

## O - Open-Closed

Behaviour should be extendable without editing existing code. The
practical mechanism is the one from the polymorphism lesson: new variants
as new types behind a stable contract. Editing a tested class to add a
case risks everything that already worked.

## L - Liskov Substitution

Anywhere a base type is accepted, a subtype must be usable without the
caller knowing. A Square that extends Rectangle but silently changes
height when width is set breaks code written against Rectangle's
contract. Subtyping is a promise about behaviour, not just a matching
method list.

## I - Interface Segregation

Clients should not depend on methods they do not use. A fat Machine
interface with print, scan, and fax forces a simple printer to stub two
methods and forces every client to recompile when fax changes. Small,
role-shaped interfaces keep coupling narrow.

## D - Dependency Inversion

High-level policy should not import low-level detail; both should depend
on abstractions. The order-processing rules should not import the MySQL
driver. Instead the rules declare the OrderStore interface they need, and
the driver-specific code implements it at the edge. Dependencies point
toward the stable centre, which is what makes the centre testable.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"polymorphism-in-practice": {
				{
					Title:    "From type switch to interface dispatch",
					Language: "go",
					Code: `type Channel interface {
    Send(ctx context.Context, msg Message) error
}

type EmailChannel struct{ client *smtp.Client }
type SMSChannel struct{ gateway SMSGateway }

func (c EmailChannel) Send(ctx context.Context, msg Message) error {
    return c.client.Mail(msg.To, msg.Body)
}

func (c SMSChannel) Send(ctx context.Context, msg Message) error {
    return c.gateway.Deliver(ctx, msg.To, msg.Body)
}

func Notify(ctx context.Context, ch Channel, msg Message) error {
    return ch.Send(ctx, msg) // one call site, any number of channels
}`,
					Explanation: "Adding a push notification channel is a new type with a Send method. Notify and every other call site remain untouched.",
					OrderIndex:  1,
				},
			},
			"solid-principles": {
				{
					Title:    "Dependency inversion at a module boundary",
					Language: "go",
					Code: `// Domain package: owns the abstraction.
type OrderStore interface {
    Save(ctx context.Context, o Order) error
}

type Checkout struct {
    store OrderStore
}

func (c *Checkout) Place(ctx context.Context, o Order) error {
    if err := o.Validate(); err != nil {
        return err
    }
    return c.store.Save(ctx, o)
}

// Infra package: depends on the domain, never the reverse.
type PostgresOrderStore struct{ db *sql.DB }

func (s *PostgresOrderStore) Save(ctx context.Context, o Order) error {
    _, err := s.db.ExecContext(ctx,
        "INSERT INTO orders (id, total) VALUES ($1, $2)", o.ID, o.Total)
    return err
}`,
					Explanation: "The checkout logic owns the OrderStore abstraction and never imports a driver. The postgres implementation lives at the edge and plugs in at wiring time.",
					OrderIndex:  1,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"polymorphism-in-practice": {
				{
					QuestionText: "A codebase has the same switch over message-channel kinds in six different files. What is the polymorphic refactoring?",
					Options: []string{
						"Merge the six switches into one utility function",
						"Give each channel a type implementing a shared interface and replace the switches with method dispatch",
						"Replace the switch with chained if-else statements",
						"Cache the switch results",
					},
					CorrectAnswer: "Give each channel a type implementing a shared interface and replace the switches with method dispatch",
					Explanation:   "Dispatch moves per-variant knowledge into the variant's own type. New channels are added by adding a type, and no existing call site changes.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "When is a plain switch preferable to polymorphic dispatch?",
					Options: []string{
						"When performance matters",
						"When the set of variants is closed and it is the operations over them that grow",
						"When the language supports interfaces",
						"Never",
					},
					CorrectAnswer: "When the set of variants is closed and it is the operations over them that grow",
					Explanation:   "Polymorphism optimizes for adding variants; a single exhaustive switch optimizes for adding operations. Pick the axis along which the code actually changes.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    2,
				},
			},
			"solid-principles": {
				{
					QuestionText: "A Square subclass of Rectangle silently updates its height whenever width is set. Which principle does this violate?",
					Options: []string{
						"Single responsibility",
						"Open-closed",
						"Liskov substitution",
						"Interface segregation",
					},
					CorrectAnswer: "Liskov substitution",
					Explanation:   "Code written against Rectangle may set width and expect height unchanged. The subtype breaks that behavioral promise even though its method signatures match.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "Which dependency direction does the dependency inversion principle prescribe?",
					Options: []string{
						"Low-level modules depend on high-level policy through abstractions the policy owns",
						"High-level policy imports the concrete drivers it needs",
						"All modules depend on a shared utilities package",
						"Dependencies should form a cycle so changes propagate everywhere",
					},
					CorrectAnswer: "Low-level modules depend on high-level policy through abstractions the policy owns",
					Explanation:   "The stable centre declares interfaces; volatile details implement them at the edge. That is what keeps business rules compilable and testable without infrastructure.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    2,
				},
			},
		},
	}
}
