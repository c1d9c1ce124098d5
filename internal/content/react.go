package content

import "learnhub-content/internal/domain"

func reactEssentials() domain.Bundle {
	return domain.Bundle{
		ID: "0005_react_essentials",
		Topic: domain.TopicSeed{
			Slug:          "react-essentials",
			Name:          "React Essentials",
			Description:   "Building user interfaces from components: props, state, hooks, and the effect model that connects React to the outside world.",
			EstimatedTime: 300,
			OrderIndex:    3,
		},
		Lessons: []domain.LessonSeed{
			{
				Slug:            "components-and-props",
				Title:           "Components and Props",
				Summary:         "React's core idea: the UI as a pure function of data, composed from small components that receive props and return markup.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   40,
				OrderIndex:      1,
				KeyPoints: []string{
					"A component is a function from props to UI",
					"Props flow downwards and are read-only inside the receiving component",
					"Composition of small components replaces page-sized templates",
					"Rendering the same props must produce the same output",
				},
				Content: `# Components and Props

React's founding idea fits in one sentence: the user interface is a
function of the data. Instead of imperatively mutating the page, you
describe what the page should look like for the current data, and React
reconciles the difference.

## Components are functions

A component takes a single argument, its props, and returns a description
of UI:

    function Greeting({ name }) {
      return <h1>Hello, {name}</h1>;
    }

That is the entire contract. No lifecycle registration, no template
language beyond JSX, no base class to extend in modern code.

## Props flow one way

Props are passed from parent to child and are read-only in the child. A
child that wants to change data owned by its parent receives a callback
prop and calls it. This one-way flow is what makes a React tree
traceable: to find why something rendered, follow the props upward.

Mutating props, or rendering differently for identical props, breaks the
model. React is free to re-render any component at any time; only pure
rendering keeps that safe.

## Composition over templates

Pages are built by composing small components, each owning one concern:

    function LessonCard({ lesson }) {
      return (
        <article>
          <LessonHeader title={lesson.title} difficulty={lesson.difficulty} />
          <KeyPoints points={lesson.keyPoints} />
          <ReadingTime minutes={lesson.estimatedTime} />
        </article>
      );
    }

Each piece can be understood, tested, and reused in isolation. The deep
prop-passing this sometimes causes has its own remedies, but those come
after the fundamentals, not instead of them.`,
			},
			{
				Slug:            "state-and-hooks",
				Title:           "State and Hooks",
				Summary:         "useState and the rules of hooks: where interactive data lives and how React keeps it stable across re-renders.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   45,
				OrderIndex:      2,
				KeyPoints: []string{
					"State is data that changes over time and belongs to a specific component",
					"useState returns the current value and a setter; calling the setter schedules a re-render",
					"Hooks must be called unconditionally at the top level so call order is stable",
					"State updates based on the previous value should use the functional form",
				},
				Content: `# State and Hooks

Props answer "what was I given"; state answers "what have I learned since
I mounted". A counter's current value, the contents of a text input, and
whether a panel is open are all state: data that changes over time and
belongs to one component.

## useState

    function Counter() {
      const [count, setCount] = useState(0);
      return (
        <button onClick={() => setCount(count + 1)}>
          Clicked {count} times
        </button>
      );
    }

Calling setCount does two things: stores the new value and schedules a
re-render. On the next render, useState returns the stored value. The
component function re-runs from the top every time, and hooks are how
values survive those re-runs.

## The rules of hooks

React matches each useState call to its stored slot by call order. That
is why hooks must be called unconditionally, at the top level, never
inside loops or conditions. Break the order between renders and every
subsequent hook reads the wrong slot.

## Updating from the previous value

When the next state depends on the current one, pass a function:

    setCount(prev => prev + 1);

Two plain setCount(count + 1) calls in the same event read the same stale
count and lose an increment. The functional form always receives the
latest value, whatever else has been scheduled.

## Lifting state up

When two components need the same state, the state moves to their nearest
common parent and comes back down as props. "Who owns this data" is the
single most useful design question in a React codebase.`,
			},
			{
				Slug:            "effects-and-data-fetching",
				Title:           "Effects and Data Fetching",
				Summary:         "useEffect as the escape hatch to the outside world: dependencies, cleanup, and the race conditions that careless fetching invites.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   50,
				OrderIndex:      3,
				KeyPoints: []string{
					"Effects run after render and synchronize the component with external systems",
					"The dependency array declares what the effect reads; lying to it causes stale closures",
					"Every subscription or timer started in an effect needs a cleanup function",
					"Fetches must handle out-of-order responses or the UI shows stale data",
				},
				Content: `# Effects and Data Fetching

Rendering must be pure, but real applications talk to servers, timers,
and browser APIs. useEffect is the designated escape hatch: code that
runs after render, synchronizing the component with the world outside
React.

## Anatomy of an effect

    useEffect(() => {
      const id = setInterval(tick, 1000);
      return () => clearInterval(id);
    }, []);

The function runs after the component renders; the returned cleanup runs
before the effect re-runs and when the component unmounts. The second
argument, the dependency array, declares which values the effect reads.
An empty array means "runs once per mount".

Omitting a real dependency does not make the effect more efficient; it
makes it read stale values from an old render's closure. The honest fix
is to include the dependency and restructure if that re-runs too often.

## Fetching without races

A fetch effect that naively sets state invites a race: the user switches
from lesson A to lesson B, the slow response for A arrives last, and the
UI shows A's content under B's title. The standard guard is a flag
scoped to the effect instance:

    useEffect(() => {
      let cancelled = false;
      fetchLesson(slug).then(lesson => {
        if (!cancelled) setLesson(lesson);
      });
      return () => { cancelled = true; };
    }, [slug]);

Each slug change cleans up the previous effect, so a late response from
an abandoned request can no longer write state. Production code reaches
for a data-fetching library that handles caching and deduplication, but
the race it protects against is exactly this one.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"components-and-props": {
				{
					Title:    "Composing a page from small components",
					Language: "jsx",
					Code: `function LessonCard({ lesson }) {
  return (
    <article className="lesson-card">
      <LessonHeader title={lesson.title} difficulty={lesson.difficulty} />
      <KeyPoints points={lesson.keyPoints} />
      <ReadingTime minutes={lesson.estimatedTime} />
    </article>
  );
}

function KeyPoints({ points }) {
  return (
    <ul>
      {points.map(point => <li key={point}>{point}</li>)}
    </ul>
  );
}`,
					Explanation: "Each component owns one concern and receives exactly the data it needs. KeyPoints can be reused and tested without the card around it.",
					OrderIndex:  1,
				},
			},
			"state-and-hooks": {
				{
					Title:    "Functional updates avoid stale reads",
					Language: "jsx",
					Code: `function DoubleIncrement() {
  const [count, setCount] = useState(0);

  function handleClick() {
    // Wrong: both calls read the same stale count.
    // setCount(count + 1);
    // setCount(count + 1);

    // Right: each update receives the latest value.
    setCount(prev => prev + 1);
    setCount(prev => prev + 1);
  }

  return <button onClick={handleClick}>{count}</button>;
}`,
					Explanation: "State setters schedule updates rather than applying them immediately. The functional form composes; the plain form silently drops one of the two increments.",
					OrderIndex:  1,
				},
			},
			"effects-and-data-fetching": {
				{
					Title:    "A fetch effect guarded against out-of-order responses",
					Language: "jsx",
					Code: `function LessonView({ slug }) {
  const [lesson, setLesson] = useState(null);

  useEffect(() => {
    let cancelled = false;
    setLesson(null);
    fetchLesson(slug).then(data => {
      if (!cancelled) setLesson(data);
    });
    return () => { cancelled = true; };
  }, [slug]);

  if (!lesson) return <Spinner />;
  return <Markdown source={lesson.content} />;
}`,
					Explanation: "Changing slug runs the cleanup of the previous effect first, flipping its cancelled flag. A slow response for the old slug arrives, finds cancelled true, and never touches state.",
					OrderIndex:  1,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"components-and-props": {
				{
					QuestionText: "Inside a component, what may it do with the props it receives?",
					Options: []string{
						"Mutate them to trigger a re-render",
						"Read them only; changes must go through a callback owned by the parent",
						"Store them in global variables for other components",
						"Delete fields it does not use",
					},
					CorrectAnswer: "Read them only; changes must go through a callback owned by the parent",
					Explanation:   "Props are read-only in the child. One-way data flow is what keeps a React tree traceable from any rendered output back to its source data.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    1,
				},
				{
					// Authored in the serialized options form; the seeder
					// normalizes it before the integrity check.
					QuestionText:  "Why must a component return the same output for the same props?",
					OptionsJSON:   `["Because React may re-render any component at any time and relies on rendering being pure","Because JSX caches all output by props","Because props are stored in the DOM","Because impure components cannot use CSS"]`,
					CorrectAnswer: "Because React may re-render any component at any time and relies on rendering being pure",
					Explanation:   "React's reconciliation assumes rendering is a pure function of props and state. Side effects or nondeterminism during render produce bugs that appear only under concurrent rendering.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
			"state-and-hooks": {
				{
					QuestionText: "Why must hooks be called unconditionally at the top level of a component?",
					Options: []string{
						"Because hooks are slow inside loops",
						"Because React matches hook calls to their stored values by call order, which must be identical on every render",
						"Because conditions cannot appear in JSX",
						"Because the linter forbids it for style reasons only",
					},
					CorrectAnswer: "Because React matches hook calls to their stored values by call order, which must be identical on every render",
					Explanation:   "Hook state lives in slots matched positionally. A hook skipped on one render shifts every later hook onto the wrong slot.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "Two components need to display and edit the same piece of state. Where should that state live?",
					Options: []string{
						"Duplicated in both components, synchronized with effects",
						"In their nearest common parent, passed down as props",
						"In the DOM",
						"In module-level mutable variables",
					},
					CorrectAnswer: "In their nearest common parent, passed down as props",
					Explanation:   "Lifting state up gives it a single owner. Duplication plus synchronization effects is the classic source of inconsistent UI.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    2,
				},
			},
			"effects-and-data-fetching": {
				{
					QuestionText: "A fetch effect without a cancellation guard can show stale data. What is the failure sequence?",
					Options: []string{
						"The browser caches the old response forever",
						"A slow response for a previous input arrives after the latest one and overwrites newer state",
						"React batches the fetches into one request",
						"The dependency array clears the component's state",
					},
					CorrectAnswer: "A slow response for a previous input arrives after the latest one and overwrites newer state",
					Explanation:   "Network responses are not ordered. The cleanup-flag pattern ensures an abandoned effect's response can no longer write state.",
					Difficulty:    domain.QuizHard,
					OrderIndex:    1,
				},
				{
					QuestionText: "What does the dependency array of useEffect declare?",
					Options: []string{
						"The values the effect reads, so React knows when it must re-run",
						"The components that may trigger the effect",
						"The props the component is allowed to receive",
						"An optimization hint that is safe to leave incomplete",
					},
					CorrectAnswer: "The values the effect reads, so React knows when it must re-run",
					Explanation:   "Omitting a real dependency does not optimize anything; it leaves the effect reading stale values captured by an old render's closure.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
		},
	}
}
